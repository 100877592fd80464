package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// StartMenuModel lets the player pick a difficulty before the game starts.
type StartMenuModel struct {
	presets  []config.DifficultyPreset
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	selected bool
	quitting bool
}

// NewStartMenuModel creates the menu with the cursor on initial.
func NewStartMenuModel(width, height int, initial config.DifficultyPreset) StartMenuModel {
	presets := config.Presets()
	cursor := 0
	for i, p := range presets {
		if p == initial {
			cursor = i
		}
	}

	h := help.New()
	h.Width = width

	return StartMenuModel{
		presets: presets,
		cursor:  cursor,
		width:   width,
		height:  height,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// Init initializes the model.
func (m StartMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StartMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m StartMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.presets)-1)
	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.presets)-1)
	case MenuActionSelect:
		m.selected = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the difficulty list.
func (m StartMenuModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder

	// Center the block vertically.
	top := max((m.height-len(m.presets)-8)/2, 1)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(titleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("  %-8s start at level %d", presetTitle(p), config.StartLevelForPreset(p))
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// Selected returns the chosen preset and whether one was chosen.
func (m StartMenuModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected {
		return "", false
	}
	return m.presets[m.cursor], true
}

func presetTitle(p config.DifficultyPreset) string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RunStartMenu shows the difficulty picker. ok is false when the player quit.
func RunStartMenu(cfg core.RuntimeConfig, initial config.DifficultyPreset) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewStartMenuModel(cfg.ScreenW, cfg.ScreenH, initial),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: start menu: %w", err)
	}

	m, isMenu := final.(StartMenuModel)
	if !isMenu {
		return "", false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
