package core

import "testing"

// TestAreaContains verifies half-open bounds on both axes
func TestAreaContains(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 20, Height: 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0}, true},
		{"last cell", Point{19, 19}, true},
		{"right edge", Point{20, 5}, false},
		{"bottom edge", Point{5, 20}, false},
		{"negative x", Point{-1, 5}, false},
		{"negative y", Point{5, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

// TestPointArithmetic verifies Add and Neg
func TestPointArithmetic(t *testing.T) {
	p := Point{X: 3, Y: -2}
	if got := p.Add(Point{X: 1, Y: 1}); got != (Point{X: 4, Y: -1}) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Neg(); got != (Point{X: -3, Y: 2}) {
		t.Errorf("Neg = %v", got)
	}
}
