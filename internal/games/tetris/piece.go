package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Offsets from the piece anchor to the top-left of its 4x4 mask.
// With the anchor at the top-center spawn column every shape lands centered.
const (
	maskOffsetX = -1
	maskOffsetY = -2
)

// RotationDir selects the rotation direction.
type RotationDir int

const (
	Clockwise        RotationDir = 1
	CounterClockwise RotationDir = -1
)

// Piece is a tetromino placed on the grid. It is a value type: movement
// returns a new Piece and the caller decides whether to keep it.
type Piece struct {
	X, Y     int // anchor, may be out of bounds transiently
	Rotation int
	Shape    ShapeID
}

// NewPiece creates a piece of shape id anchored at (x, y) in its spawn rotation.
func NewPiece(id ShapeID, x, y int) Piece {
	return Piece{X: x, Y: y, Shape: id}
}

// Mask returns the occupancy mask of the current rotation.
func (p Piece) Mask() Mask {
	return RotationMask(p.Shape, p.Rotation)
}

// Color returns the shape color.
func (p Piece) Color() core.Color {
	return ColorOf(p.Shape)
}

// Cells returns the absolute grid coordinates of the four occupied cells.
func (p Piece) Cells() [4]core.Point {
	var cells [4]core.Point
	n := 0
	mask := p.Mask()
	for r := range mask {
		for c := range mask[r] {
			if !mask[r][c] {
				continue
			}
			cells[n] = core.Point{X: p.X + c + maskOffsetX, Y: p.Y + r + maskOffsetY}
			n++
		}
	}
	return cells
}

// Translate returns the piece shifted by (dx, dy). No validity check is done.
func (p Piece) Translate(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotate returns the piece advanced one rotation state in dir.
func (p Piece) Rotate(dir RotationDir) Piece {
	n := RotationCount(p.Shape)
	p.Rotation = ((p.Rotation+int(dir))%n + n) % n
	return p
}
