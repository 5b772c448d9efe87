package conic

// Vec2 is a displacement in the plane. Shapes are moved by vectors; their
// positions are [Point] values.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}
