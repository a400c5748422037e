package core

// Point is an integer grid coordinate
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Neg returns the opposite vector
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains reports whether p lies inside the area
func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}
