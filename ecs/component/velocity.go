package component

import "github.com/jakecoffman/cp"

// Velocity stores linear velocity in units per second.
type Velocity struct {
	Vec cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
