package common

// Court dimensions and tuning constants. Court space is centered at the
// origin with +y up; the render system maps to screen space.
const (
	CourtWidth  = 1920.0
	CourtHeight = 1080.0

	// PlayerStartX is the fixed |x| of both paddles.
	PlayerStartX = CourtWidth/4 + CourtWidth/5

	PlayerSpeed   = 550.0
	ComputerSpeed = 500.0
	BallSpeed     = 700.0

	// OutMargin extends the court edge before a ball counts as out.
	OutMargin = 10.0

	// WallY is the |y| of the wall centers, just above/below the court.
	WallY      = CourtHeight/2 + 10
	WallWidth  = CourtWidth
	WallHeight = 10.0

	// ComputerDeadBand is the |y| band inside which the computer paddle
	// stops while drifting back to center.
	ComputerDeadBand = 50.0
	// ComputerRampX is the |x| past which the computer tracks at full
	// speed instead of 70%.
	ComputerRampX = CourtWidth * 0.275
)
