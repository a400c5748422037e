package vmath

// Vec2F is a float64 2D vector in court pixels
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

// ReflectAxisX flips the horizontal component (vertical surface)
func ReflectAxisX(v Vec2F) Vec2F {
	return Vec2F{-v.X, v.Y}
}

// ReflectAxisY flips the vertical component (horizontal surface)
func ReflectAxisY(v Vec2F) Vec2F {
	return Vec2F{v.X, -v.Y}
}
