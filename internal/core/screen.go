package core

import (
	"math"
	"strings"
)

// Glyphs used when rasterizing world shapes into terminal cells.
const (
	GlyphBlock  = '█'
	GlyphCircle = '●'
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D character buffer for rendering game graphics.
// It implements Surface by mapping a world of worldW x worldH pixels onto
// a width x height cell grid, so the simulation draws in pixels while the
// terminal platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell

	worldW float64
	worldH float64
}

// NewScreen creates a new screen buffer with the given dimensions.
// The world size defaults to one pixel per cell until SetWorld is called.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		worldW: float64(width),
		worldH: float64(height),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// SetWorld sets the world size that is scaled onto the cell grid.
func (s *Screen) SetWorld(w, h float64) {
	s.worldW = w
	s.worldH = h
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a rune at the given cell position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// cellSize returns how many world pixels one cell spans on each axis.
func (s *Screen) cellSize() (float64, float64) {
	cw, ch := 1.0, 1.0
	if s.width > 0 && s.worldW > 0 {
		cw = s.worldW / float64(s.width)
	}
	if s.height > 0 && s.worldH > 0 {
		ch = s.worldH / float64(s.height)
	}
	return cw, ch
}

// Size implements Surface.
func (s *Screen) Size() (float64, float64) {
	return s.worldW, s.worldH
}

// FillRect implements Surface. Every cell the rectangle touches is filled.
// ColorShade dims the covered cells instead of overwriting them.
func (s *Screen) FillRect(r Rect, c Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	cw, ch := s.cellSize()
	x0 := int(math.Floor(r.X / cw))
	x1 := int(math.Ceil(r.Right() / cw))
	y0 := int(math.Floor(r.Y / ch))
	y1 := int(math.Ceil(r.Bottom() / ch))

	for y := max(y0, 0); y < min(y1, s.height); y++ {
		for x := max(x0, 0); x < min(x1, s.width); x++ {
			if c == ColorShade {
				s.cells[y][x].Color = ColorShade
				continue
			}
			s.cells[y][x] = Cell{Rune: GlyphBlock, Color: c}
		}
	}
}

// FillCircle implements Surface. Cells whose centers fall inside the circle
// are filled; a circle smaller than a cell still marks its center cell.
// Background-colored circles smaller than a cell are skipped so that
// cut-outs do not erase the shape they are drawn on.
func (s *Screen) FillCircle(cx, cy, radius float64, c Color) {
	if radius <= 0 {
		return
	}
	cw, ch := s.cellSize()
	if c == ColorBackground && radius < cw {
		return
	}

	painted := false
	x0 := int(math.Floor((cx - radius) / cw))
	x1 := int(math.Ceil((cx + radius) / cw))
	y0 := int(math.Floor((cy - radius) / ch))
	y1 := int(math.Ceil((cy + radius) / ch))
	for y := max(y0, 0); y < min(y1, s.height); y++ {
		for x := max(x0, 0); x < min(x1, s.width); x++ {
			px := (float64(x) + 0.5) * cw
			py := (float64(y) + 0.5) * ch
			if math.Hypot(px-cx, py-cy) <= radius {
				s.Set(x, y, GlyphCircle, c)
				painted = true
			}
		}
	}
	if !painted {
		s.Set(int(math.Floor(cx/cw)), int(math.Floor(cy/ch)), GlyphCircle, c)
	}
}

// MeasureText implements Surface: one cell per rune.
func (s *Screen) MeasureText(text string) float64 {
	cw, _ := s.cellSize()
	return float64(len([]rune(text))) * cw
}

// DrawText implements Surface. Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(text string, x, y float64, c Color) {
	cw, ch := s.cellSize()
	col := int(math.Round(x / cw))
	row := int(math.Floor(y / ch))
	s.PutText(col, row, text, c)
}

// PutText writes a string horizontally starting at cell (x, y).
func (s *Screen) PutText(x, y int, text string, c Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r, c)
		i++
	}
}

// String converts the screen buffer to a plain string without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Surface = (*Screen)(nil)
