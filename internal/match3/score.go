package match3

// Score is a ScoreSink that only grows.
type Score struct {
	total int
}

// Add accumulates amount. Negative amounts are dropped.
func (s *Score) Add(amount int) {
	if amount > 0 {
		s.total += amount
	}
}

// Total returns the accumulated score.
func (s *Score) Total() int { return s.total }

// Reset sets the score back to zero.
func (s *Score) Reset() { s.total = 0 }
