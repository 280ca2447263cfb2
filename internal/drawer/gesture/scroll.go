package gesture

// ScrollState is a single-writer scroll offset flag. The content's scroll callback
// writes it; the arbiter reads it on every capture decision.
type ScrollState struct {
	offset float64
}

// Report records the content's current vertical scroll offset.
func (s *ScrollState) Report(offset float64) {
	s.offset = offset
}

// ScrollOffset implements ScrollReader.
func (s *ScrollState) ScrollOffset() float64 {
	return s.offset
}
