package component

// Collider is an axis-aligned box. Width and Height are the full extents
// handed to the overlap test; immutable after creation.
type Collider struct {
	Width  float64
	Height float64
}

// Cuboid builds a box collider from full extents.
func Cuboid(width, height float64) Collider {
	return Collider{Width: width, Height: height}
}

// Circle approximates a circle as a box of side = diameter.
func Circle(radius float64) Collider {
	d := radius * 2
	return Collider{Width: d, Height: d}
}

var ColliderComponent = NewComponent[Collider]()
