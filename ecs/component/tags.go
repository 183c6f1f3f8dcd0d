package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type ComputerTag struct{}

var ComputerTagComponent = NewComponent[ComputerTag]()

type BallTag struct{}

var BallTagComponent = NewComponent[BallTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()
