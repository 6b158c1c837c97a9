package quiz

// PageState holds the per-page quiz counter and flag.
// The zero value is ready for the first pass of a new page.
type PageState struct {
	ordinal    int
	hasQuizzes bool
}

// next returns the ordinal for the next rendered block and advances the counter.
func (s *PageState) next() int {
	n := s.ordinal
	s.ordinal++
	return n
}

// Count returns how many blocks were rendered on the page.
func (s *PageState) Count() int {
	return s.ordinal
}

// HasQuizzes reports whether the first pass rendered at least one block.
func (s *PageState) HasQuizzes() bool {
	return s.hasQuizzes
}

// reset prepares the state for a new first pass.
func (s *PageState) reset() {
	s.ordinal = 0
	s.hasQuizzes = false
}

// settle records the outcome of the first pass.
func (s *PageState) settle() {
	s.hasQuizzes = s.ordinal > 0
}
