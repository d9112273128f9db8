package core

import "math"

// Pixel size of one terminal cell. Games simulate in device pixels so that
// sizes and speeds expressed as fractions of the viewport behave the same on
// any terminal.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// Viewport is the drawing surface size in device pixels. It is owned by the
// host and read-only to the simulation.
type Viewport struct {
	Width  float64
	Height float64
}

// ScreenViewport returns the pixel viewport covered by cols x rows cells.
func ScreenViewport(cols, rows int) Viewport {
	return Viewport{
		Width:  float64(max(cols, 0) * CellWidthPx),
		Height: float64(max(rows, 0) * CellHeightPx),
	}
}

// Empty reports whether the surface has no drawable area yet,
// e.g. during initial layout.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Project returns the mapping from this viewport onto dst.
func (v Viewport) Project(dst *Screen) Projection {
	if v.Empty() || dst.Width() == 0 || dst.Height() == 0 {
		return Projection{}
	}
	return Projection{
		sx: float64(dst.Width()) / v.Width,
		sy: float64(dst.Height()) / v.Height,
	}
}

// Projection converts viewport pixels to screen cells.
// The zero value maps everything to the origin.
type Projection struct {
	sx, sy float64
}

// X converts a horizontal pixel coordinate to a column.
func (p Projection) X(px float64) int {
	return int(math.Floor(px * p.sx))
}

// Y converts a vertical pixel coordinate to a row.
func (p Projection) Y(py float64) int {
	return int(math.Floor(py * p.sy))
}

// Rect converts a pixel box to the cells it covers. Non-empty boxes always
// cover at least one cell.
func (p Projection) Rect(r RectF) Rect {
	x0, y0 := p.X(r.X), p.Y(r.Y)
	x1 := int(math.Ceil(r.Right() * p.sx))
	y1 := int(math.Ceil(r.Bottom() * p.sy))
	w, h := x1-x0, y1-y0
	if r.W > 0 && w < 1 {
		w = 1
	}
	if r.H > 0 && h < 1 {
		h = 1
	}
	return NewRect(x0, y0, w, h)
}
