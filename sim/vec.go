package sim

import "math"

// Vec2 is a 2D position or displacement.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.Dot(v)
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Normalized returns the unit vector along v, or the zero vector if v is zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Eq reports whether v and o are within tolerance on both axes.
func (v Vec2) Eq(o Vec2, tolerance float64) bool {
	return math.Abs(v.X-o.X) <= tolerance && math.Abs(v.Y-o.Y) <= tolerance
}
