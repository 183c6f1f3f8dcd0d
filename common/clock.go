package common

// Clock carries the elapsed time of the current frame in seconds. The game
// loop writes it once per frame before the systems run.
type Clock struct {
	Delta float64
}
