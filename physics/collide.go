// Package physics provides the axis-aligned overlap test used by the ball
// collision system.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Side identifies which side of box b the box a collided with.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
	// SideInside means a is fully contained in b on both axes; callers
	// treat it as a no-op.
	SideInside
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideInside:
		return "inside"
	}
	return "unknown"
}

// Detect tests two axis-aligned boxes given by center position and full
// extents. It returns the side of b that a hit and true on overlap. When
// an edge is crossed on both axes the axis with the smaller penetration
// depth wins; a fully contained axis never wins over a crossed one.
func Detect(aPos cp.Vector, aSize cp.Vector, bPos cp.Vector, bSize cp.Vector) (Side, bool) {
	aMin := aPos.Sub(aSize.Mult(0.5))
	aMax := aPos.Add(aSize.Mult(0.5))
	bMin := bPos.Sub(bSize.Mult(0.5))
	bMax := bPos.Add(bSize.Mult(0.5))

	if aMin.X >= bMax.X || aMax.X <= bMin.X || aMin.Y >= bMax.Y || aMax.Y <= bMin.Y {
		return 0, false
	}

	xSide, xDepth := SideInside, math.Inf(1)
	if aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X {
		xSide, xDepth = SideLeft, aMax.X-bMin.X
	} else if aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X {
		xSide, xDepth = SideRight, bMax.X-aMin.X
	}

	ySide, yDepth := SideInside, math.Inf(1)
	if aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y {
		ySide, yDepth = SideBottom, aMax.Y-bMin.Y
	} else if aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y {
		ySide, yDepth = SideTop, bMax.Y-aMin.Y
	}

	if yDepth < xDepth {
		return ySide, true
	}
	return xSide, true
}
