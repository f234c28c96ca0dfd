package sim

import "image/color"

// Surface is the rendering sink the registry draws into. Implementations
// live outside the core; see render/screen and render/term.
type Surface interface {
	FillCircle(center Vec2, radius float64, c color.RGBA)
}
