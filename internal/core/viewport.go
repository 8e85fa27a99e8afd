package core

// Viewport describes the terminal a front end draws into.
type Viewport struct {
	Cols     int // Terminal width in cells
	Rows     int // Terminal height in cells, footer included
	TickRate int // Simulation ticks per second
	Footer   int // Rows reserved below the playfield
}

// DefaultViewport returns the fallback used when the terminal size is
// unknown.
func DefaultViewport() Viewport {
	return Viewport{Cols: 120, Rows: 34, TickRate: 60, Footer: 1}
}

// Normalize fills unset or invalid fields from DefaultViewport.
func (v Viewport) Normalize() Viewport {
	d := DefaultViewport()
	if v.Cols <= 0 {
		v.Cols = d.Cols
	}
	if v.Rows <= 0 {
		v.Rows = d.Rows
	}
	if v.TickRate <= 0 {
		v.TickRate = d.TickRate
	}
	if v.Footer < 0 {
		v.Footer = 0
	}
	return v
}

// PlayRows is the height left for the playfield, never less than one row.
func (v Viewport) PlayRows() int {
	return max(1, v.Rows-v.Footer)
}

// Resize returns v with a new terminal size.
func (v Viewport) Resize(cols, rows int) Viewport {
	v.Cols, v.Rows = cols, rows
	return v.Normalize()
}
