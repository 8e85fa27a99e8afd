package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/donut-dash/internal/core"
)

// textScale enlarges the 7x13 bitmap font to match the HUD line spacing.
const textScale = 1.3

// Surface adapts an ebiten image to core.Surface. World pixels map 1:1
// onto image pixels; ebiten scales the image to the window.
type Surface struct {
	img  *ebiten.Image
	face text.Face
}

// NewSurface wraps img.
func NewSurface(img *ebiten.Image) *Surface {
	return &Surface{img: img, face: text.NewGoXFace(basicfont.Face7x13)}
}

// Target switches the image drawn onto, keeping the font face.
func (s *Surface) Target(img *ebiten.Image) {
	s.img = img
}

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.FillRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.RGBA(), false)
}

func (s *Surface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), c.RGBA(), true)
}

func (s *Surface) MeasureText(str string) float64 {
	w, _ := text.Measure(str, s.face, 0)
	return w * textScale
}

// DrawText draws str with its top-left corner at (x, y).
func (s *Surface) DrawText(str string, x, y float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	text.Draw(s.img, str, s.face, op)
}

var _ core.Surface = (*Surface)(nil)
