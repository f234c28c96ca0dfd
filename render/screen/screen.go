// Package screen draws simulation entities onto an ebiten image.
package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/hunters/sim"
)

// Surface adapts an *ebiten.Image to sim.Surface. The image is swapped in
// every frame with Target because ebiten hands Draw a fresh screen.
type Surface struct {
	image     *ebiten.Image
	antialias bool
}

// New creates a surface. Antialiasing smooths circle edges at some cost.
func New(antialias bool) *Surface {
	return &Surface{antialias: antialias}
}

// Target sets the image subsequent draws go to.
func (s *Surface) Target(image *ebiten.Image) {
	s.image = image
}

// Clear fills the whole target with c.
func (s *Surface) Clear(c color.RGBA) {
	if s.image != nil {
		s.image.Fill(c)
	}
}

func (s *Surface) FillCircle(center sim.Vec2, radius float64, c color.RGBA) {
	if s.image == nil {
		return
	}
	vector.DrawFilledCircle(s.image, float32(center.X), float32(center.Y), float32(radius), c, s.antialias)
}
