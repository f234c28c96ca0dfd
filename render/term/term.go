// Package term draws simulation entities onto a tcell screen. The playfield
// is scaled to the terminal so that the whole world stays visible; each cell
// whose centre falls inside a circle is painted with the circle's colour.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/hunters/sim"
)

// Surface adapts a tcell.Screen to sim.Surface.
type Surface struct {
	screen        tcell.Screen
	worldW        float64
	worldH        float64
	cols, rows    int
	scaleX        float64
	scaleY        float64
	background    tcell.Color
	backgroundSet bool
}

// New creates a surface mapping a worldW x worldH playfield onto screen.
func New(screen tcell.Screen, worldW, worldH float64) *Surface {
	s := &Surface{
		screen: screen,
		worldW: worldW,
		worldH: worldH,
	}
	s.Resize()
	return s
}

// Resize recomputes the world to cell scale from the current screen size.
// Call it after every *tcell.EventResize.
func (s *Surface) Resize() {
	s.cols, s.rows = s.screen.Size()
	s.scaleX = float64(s.cols) / s.worldW
	s.scaleY = float64(s.rows) / s.worldH
}

// Clear fills the screen with the background colour c.
func (s *Surface) Clear(c color.RGBA) {
	s.background = rgb(c)
	s.backgroundSet = true
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.background))
}

func (s *Surface) FillCircle(center sim.Vec2, radius float64, c color.RGBA) {
	style := tcell.StyleDefault.Background(rgb(c))
	if s.backgroundSet {
		style = style.Foreground(s.background)
	}

	cx, cy := center.X*s.scaleX, center.Y*s.scaleY
	rx, ry := radius*s.scaleX, radius*s.scaleY

	x0, x1 := s.clampCol(int(math.Floor(cx-rx))), s.clampCol(int(math.Ceil(cx+rx)))
	y0, y1 := s.clampRow(int(math.Floor(cy-ry))), s.clampRow(int(math.Ceil(cy+ry)))

	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				s.screen.SetContent(x, y, ' ', nil, style)
				painted = true
			}
		}
	}

	// Circles smaller than a cell still show up as one cell.
	if !painted {
		x, y := int(cx), int(cy)
		if x >= 0 && x < s.cols && y >= 0 && y < s.rows {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// ToWorld converts a cell position, such as a mouse event, to the centre of
// that cell in world coordinates.
func (s *Surface) ToWorld(col, row int) sim.Vec2 {
	if s.scaleX == 0 || s.scaleY == 0 {
		return sim.Vec2{}
	}
	return sim.Vec2{
		X: (float64(col) + 0.5) / s.scaleX,
		Y: (float64(row) + 0.5) / s.scaleY,
	}
}

func (s *Surface) clampCol(x int) int {
	return min(max(x, 0), s.cols-1)
}

func (s *Surface) clampRow(y int) int {
	return min(max(y, 0), s.rows-1)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
