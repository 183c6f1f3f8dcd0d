package component

// Transform stores position in court space: origin at center, +y up.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
