package dice

// Sequence is a Source that replays fixed die faces, for tests that need
// exact round-by-round outcomes. Faces are given as die values in [1, Faces]
// and the sequence wraps around once exhausted.
type Sequence struct {
	faces []int
	pos   int
}

// NewSequence creates a sequence source from die faces
func NewSequence(faces ...int) *Sequence {
	return &Sequence{faces: faces}
}

// IntN returns the next face shifted to [0, n). Faces outside [1, n]
// are wrapped into range.
func (s *Sequence) IntN(n int) int {
	if len(s.faces) == 0 || n <= 0 {
		return 0
	}
	v := s.faces[s.pos%len(s.faces)]
	s.pos++
	v = (v - 1) % n
	if v < 0 {
		v += n
	}
	return v
}

// Calls returns how many values have been drawn
func (s *Sequence) Calls() int {
	return s.pos
}
