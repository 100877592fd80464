package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ShapeID identifies one of the seven tetrominoes.
type ShapeID int

// Catalog order matches the classic S, Z, I, O, J, L, T listing.
const (
	ShapeS ShapeID = iota
	ShapeZ
	ShapeI
	ShapeO
	ShapeJ
	ShapeL
	ShapeT
)

// MaskSize is the side length of a rotation mask.
const MaskSize = 4

// Mask is the occupancy of one rotation state inside a 4x4 box.
// Indexed as mask[row][col].
type Mask [MaskSize][MaskSize]bool

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// Shape is an immutable catalog entry.
type Shape struct {
	ID        ShapeID
	Name      string
	Rotations []Mask
	Color     core.Color
}

// shapeArt lists every rotation state as 4 rows of '.' (empty) and '0' (filled).
var shapeArt = [...]struct {
	name  string
	color core.Color
	art   [][MaskSize]string
}{
	ShapeS: {"S", core.ColorGreen, [][MaskSize]string{
		{"..00", ".00.", "....", "...."},
		{".0..", ".00.", "..0.", "...."},
	}},
	ShapeZ: {"Z", core.ColorRed, [][MaskSize]string{
		{".00.", "..00", "....", "...."},
		{"..0.", ".00.", ".0..", "...."},
	}},
	ShapeI: {"I", core.ColorCyan, [][MaskSize]string{
		{"....", "0000", "....", "...."},
		{"..0.", "..0.", "..0.", "..0."},
	}},
	ShapeO: {"O", core.ColorYellow, [][MaskSize]string{
		{".00.", ".00.", "....", "...."},
	}},
	ShapeJ: {"J", core.ColorBlue, [][MaskSize]string{
		{"0...", "000.", "....", "...."},
		{".00.", ".0..", ".0..", "...."},
		{"....", "000.", "..0.", "...."},
		{"..0.", "..0.", ".00.", "...."},
	}},
	ShapeL: {"L", core.ColorOrange, [][MaskSize]string{
		{"..0.", "000.", "....", "...."},
		{".0..", ".0..", ".00.", "...."},
		{"....", "000.", "0...", "...."},
		{".00.", "..0.", "..0.", "...."},
	}},
	ShapeT: {"T", core.ColorMagenta, [][MaskSize]string{
		{".0..", "000.", "....", "...."},
		{".0..", ".00.", ".0..", "...."},
		{"....", "000.", ".0..", "...."},
		{".0..", "00..", ".0..", "...."},
	}},
}

// catalog is built once from shapeArt at init.
var catalog []Shape

func init() {
	catalog = make([]Shape, len(shapeArt))
	for i, def := range shapeArt {
		rotations := make([]Mask, len(def.art))
		for r, rows := range def.art {
			mask, err := parseMask(rows)
			if err != nil {
				panic(fmt.Sprintf("tetris: shape %s rotation %d: %v", def.name, r, err))
			}
			rotations[r] = mask
		}
		catalog[i] = Shape{
			ID:        ShapeID(i),
			Name:      def.name,
			Rotations: rotations,
			Color:     def.color,
		}
	}
}

// parseMask converts ASCII art into a mask and checks it is a connected tetromino.
func parseMask(rows [MaskSize]string) (Mask, error) {
	var m Mask
	for r, line := range rows {
		if len(line) != MaskSize {
			return m, fmt.Errorf("row %d has %d columns", r, len(line))
		}
		for c, ch := range line {
			switch ch {
			case '0':
				m[r][c] = true
			case '.':
			default:
				return m, fmt.Errorf("row %d: unexpected %q", r, ch)
			}
		}
	}
	if n := m.Count(); n != 4 {
		return m, fmt.Errorf("%d cells, want 4", n)
	}
	if !connected(m) {
		return m, fmt.Errorf("cells are not connected")
	}
	return m, nil
}

// connected flood-fills from the first occupied cell.
func connected(m Mask) bool {
	var seen Mask
	var stack []core.Point
	for r := 0; r < MaskSize && len(stack) == 0; r++ {
		for c := 0; c < MaskSize; c++ {
			if m[r][c] {
				stack = append(stack, core.Point{X: c, Y: r})
				seen[r][c] = true
				break
			}
		}
	}

	visited := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++
		for _, d := range [4]core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
			n := p.Add(d.X, d.Y)
			if n.X < 0 || n.X >= MaskSize || n.Y < 0 || n.Y >= MaskSize {
				continue
			}
			if m[n.Y][n.X] && !seen[n.Y][n.X] {
				seen[n.Y][n.X] = true
				stack = append(stack, n)
			}
		}
	}
	return visited == m.Count()
}

// Shapes returns every shape ID in catalog order.
func Shapes() []ShapeID {
	ids := make([]ShapeID, len(catalog))
	for i := range catalog {
		ids[i] = ShapeID(i)
	}
	return ids
}

// ShapeOf returns the catalog entry for id.
func ShapeOf(id ShapeID) Shape {
	return catalog[id]
}

// RotationCount returns how many distinct rotation states id has.
func RotationCount(id ShapeID) int {
	return len(catalog[id].Rotations)
}

// RotationMask returns the mask for rot modulo the shape's rotation count.
// Negative indices wrap around.
func RotationMask(id ShapeID, rot int) Mask {
	rotations := catalog[id].Rotations
	n := len(rotations)
	return rotations[((rot%n)+n)%n]
}

// ColorOf returns the color tag of id.
func ColorOf(id ShapeID) core.Color {
	return catalog[id].Color
}

// Valid reports whether id names a catalog shape.
func (id ShapeID) Valid() bool {
	return id >= 0 && int(id) < len(catalog)
}

// String returns the single-letter name of the shape.
func (id ShapeID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ShapeID(%d)", int(id))
	}
	return catalog[id].Name
}

// ParseShapeID resolves a single-letter shape name, case-insensitively.
func ParseShapeID(name string) (ShapeID, error) {
	for i, s := range catalog {
		if strings.EqualFold(s.Name, name) {
			return ShapeID(i), nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown shape %q", name)
}

// Art renders a mask as ASCII rows, the inverse of the catalog encoding.
func (m Mask) Art() []string {
	rows := make([]string, MaskSize)
	for r := range m {
		var sb strings.Builder
		for c := range m[r] {
			if m[r][c] {
				sb.WriteByte('0')
			} else {
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return rows
}
