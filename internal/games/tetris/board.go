package tetris

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// cellKey packs a grid coordinate into one integer so the locked-cell map
// compares keys by value.
type cellKey int64

func keyOf(x, y int) cellKey {
	return cellKey(int64(y)<<32 | int64(uint32(int32(x))))
}

func (k cellKey) point() core.Point {
	return core.Point{X: int(int32(uint32(k))), Y: int(int64(k) >> 32)}
}

// Grid is a row-major projection of the board: grid[y][x].
// core.ColorEmpty marks free cells.
type Grid [][]core.Color

// Board is the well. The locked-cell map is its only durable state;
// grids are rebuilt from it on demand.
type Board struct {
	width  int
	height int
	locked *intmap.Map[cellKey, core.Color]
}

// NewBoard creates an empty board. Dimensions are validated by Options.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		locked: intmap.New[cellKey, core.Color](width * height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Reset removes every locked cell.
func (b *Board) Reset() {
	b.locked.Clear()
}

// LockedCount returns the number of locked cells.
func (b *Board) LockedCount() int {
	return b.locked.Len()
}

// Cell returns the locked color at (x, y) and whether the cell is occupied.
func (b *Board) Cell(x, y int) (core.Color, bool) {
	return b.locked.Get(keyOf(x, y))
}

// Fill locks a single cell. Out-of-bounds coordinates are ignored.
func (b *Board) Fill(x, y int, c core.Color) {
	if !b.inside(x, y) {
		return
	}
	b.locked.Put(keyOf(x, y), c)
}

func (b *Board) inside(x, y int) bool {
	return core.NewRect(0, 0, b.width, b.height).Contains(x, y)
}

// IsValid reports whether every cell of p is inside the columns, above the
// floor and not on a locked cell. Cells above the top row are allowed.
func (b *Board) IsValid(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.width || c.Y >= b.height {
			return false
		}
		if c.Y >= 0 && b.locked.Has(keyOf(c.X, c.Y)) {
			return false
		}
	}
	return true
}

// Lock commits the visible cells of p to the board. Existing entries are
// overwritten.
func (b *Board) Lock(p Piece) {
	color := p.Color()
	for _, c := range p.Cells() {
		if c.Y < 0 {
			continue
		}
		b.Fill(c.X, c.Y, color)
	}
}

// FullRows returns the indices of complete rows, bottom first.
func (b *Board) FullRows() []int {
	counts := make([]int, b.height)
	b.locked.ForEach(func(k cellKey, _ core.Color) bool {
		p := k.point()
		if b.inside(p.X, p.Y) {
			counts[p.Y]++
		}
		return true
	})

	var rows []int
	for y := b.height - 1; y >= 0; y-- {
		if counts[y] == b.width {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullRows removes every complete row and drops each surviving cell by
// the number of removed rows below it. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	full := b.FullRows()
	if len(full) == 0 {
		return 0
	}

	isFull := make([]bool, b.height)
	for _, y := range full {
		isFull[y] = true
	}
	// shift[y] counts full rows strictly below y.
	shift := make([]int, b.height)
	below := 0
	for y := b.height - 1; y >= 0; y-- {
		shift[y] = below
		if isFull[y] {
			below++
		}
	}

	next := intmap.New[cellKey, core.Color](b.locked.Len())
	b.locked.ForEach(func(k cellKey, c core.Color) bool {
		p := k.point()
		if p.Y < 0 || p.Y >= b.height {
			next.Put(k, c)
			return true
		}
		if isFull[p.Y] {
			return true
		}
		next.Put(keyOf(p.X, p.Y+shift[p.Y]), c)
		return true
	})
	b.locked = next

	return len(full)
}

// IsLost reports whether any locked cell sits in the top row.
func (b *Board) IsLost() bool {
	lost := false
	b.locked.ForEach(func(k cellKey, _ core.Color) bool {
		if k.point().Y < 1 {
			lost = true
			return false
		}
		return true
	})
	return lost
}

// Ghost returns p moved straight down as far as it stays valid.
func (b *Board) Ghost(p Piece) Piece {
	for {
		next := p.Translate(0, 1)
		if !b.IsValid(next) {
			return p
		}
		p = next
	}
}

// Snapshot builds a fresh grid of locked cells and, if overlay is non-nil,
// paints its visible cells on top.
func (b *Board) Snapshot(overlay *Piece) Grid {
	grid := make(Grid, b.height)
	for y := range grid {
		grid[y] = make([]core.Color, b.width)
	}

	b.locked.ForEach(func(k cellKey, c core.Color) bool {
		p := k.point()
		if b.inside(p.X, p.Y) {
			grid[p.Y][p.X] = c
		}
		return true
	})

	if overlay != nil {
		color := overlay.Color()
		for _, c := range overlay.Cells() {
			if b.inside(c.X, c.Y) {
				grid[c.Y][c.X] = color
			}
		}
	}
	return grid
}
