package common

// Scoreboard holds the two score counters. Mutated only by the award
// system and the reset system within the single-threaded frame loop.
type Scoreboard struct {
	Player   uint32
	Computer uint32
}

// Reset zeroes both counters.
func (s *Scoreboard) Reset() {
	if s == nil {
		return
	}
	s.Player = 0
	s.Computer = 0
}
