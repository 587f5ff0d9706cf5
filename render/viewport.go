package render

import (
	"math"

	"github.com/lixenwraith/bulletsinair/engine"
)

// Rows reserved outside the playfield
const (
	hudRows    = 1 // Health bars and match timer
	footerRows = 2 // Controls guide and status line
)

// Viewport maps playfield units to terminal cells
type Viewport struct {
	Cols, Rows int // Screen size in cells
	Top        int // First playfield row
	FieldRows  int // Playfield height in cells

	ScaleX, ScaleY float64 // Cells per playfield unit
}

// NewViewport fits a surfaceW x surfaceH playfield into a cols x rows screen
func NewViewport(cols, rows int, surfaceW, surfaceH float64) Viewport {
	if cols < 1 {
		cols = 1
	}
	fieldRows := rows - hudRows - footerRows
	if fieldRows < 1 {
		fieldRows = 1
	}
	return Viewport{
		Cols:      cols,
		Rows:      rows,
		Top:       hudRows,
		FieldRows: fieldRows,
		ScaleX:    float64(cols) / surfaceW,
		ScaleY:    float64(fieldRows) / surfaceH,
	}
}

// Cell returns the screen cell containing a playfield point
func (v Viewport) Cell(x, y float64) (cx, cy int) {
	return int(math.Floor(x * v.ScaleX)), v.Top + int(math.Floor(y*v.ScaleY))
}

// CellRect returns the half-open cell span [x0,x1) x [y0,y1) covering r, at least one cell in each axis
func (v Viewport) CellRect(r engine.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.ScaleX))
	x1 = int(math.Ceil(r.Right() * v.ScaleX))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	y0 = v.Top + int(math.Floor(r.Y*v.ScaleY))
	y1 = v.Top + int(math.Ceil(r.Bottom()*v.ScaleY))
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Point returns the playfield point at the center of a screen cell
// ok is false for cells outside the playfield rows
func (v Viewport) Point(cx, cy int) (x, y float64, ok bool) {
	row := cy - v.Top
	if row < 0 || row >= v.FieldRows || cx < 0 || cx >= v.Cols {
		return 0, 0, false
	}
	return (float64(cx) + 0.5) / v.ScaleX, (float64(row) + 0.5) / v.ScaleY, true
}

// InField reports whether a cell is inside the playfield area
func (v Viewport) InField(cx, cy int) bool {
	return cx >= 0 && cx < v.Cols && cy >= v.Top && cy < v.Top+v.FieldRows
}
