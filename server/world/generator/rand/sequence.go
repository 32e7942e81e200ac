package rand

import "fmt"

// Sequence is a Source that replays scripted values. It is used to assert the
// exact draws a feature makes. Sequence panics when a value is requested that
// was not scripted, so unexpected draws fail loudly.
type Sequence struct {
	ints   []int
	floats []float64
}

// NewSequence returns a Sequence that returns ints from Intn and floats from
// Float64, in order.
func NewSequence(ints []int, floats []float64) *Sequence {
	return &Sequence{ints: ints, floats: floats}
}

// Intn ...
func (s *Sequence) Intn(n int) int {
	if len(s.ints) == 0 {
		panic(fmt.Sprintf("rand: sequence has no int left for Intn(%d)", n))
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("rand: scripted int %d out of range for Intn(%d)", v, n))
	}
	return v
}

// Float64 ...
func (s *Sequence) Float64() float64 {
	if len(s.floats) == 0 {
		panic("rand: sequence has no float left for Float64")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// Remaining returns the amount of scripted ints and floats that were not yet
// drawn.
func (s *Sequence) Remaining() (ints, floats int) {
	return len(s.ints), len(s.floats)
}
