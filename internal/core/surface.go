package core

// Surface is an immediate-mode 2D drawing sink.
// All coordinates are world pixels; implementations scale as needed.
// No scene graph is retained between frames.
type Surface interface {
	// Size returns the drawable world area.
	Size() (w, h float64)
	// FillRect fills an axis-aligned rectangle.
	FillRect(r Rect, c Color)
	// FillCircle fills a circle centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)
	// MeasureText returns the rendered width of s in world pixels.
	MeasureText(s string) float64
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, x, y float64, c Color)
}
