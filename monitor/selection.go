package monitor

// Selection is a cursor into the current view. It tracks a position, not a
// process: when the list reorders between refreshes the same index may point
// at a different process.
type Selection struct {
	index int
	valid bool
}

// NewSelection starts on the first row, like a freshly opened list.
func NewSelection() Selection {
	return Selection{index: 0, valid: true}
}

// Selected returns the current index, if any.
func (s *Selection) Selected() (int, bool) {
	return s.index, s.valid
}

// Next moves down, wrapping from the last row to the first.
func (s *Selection) Next(length int) {
	if length <= 0 {
		return
	}
	if !s.valid || s.index >= length-1 {
		s.index, s.valid = 0, true
		return
	}
	s.index++
}

// Previous moves up, wrapping from the first row to the last.
func (s *Selection) Previous(length int) {
	if length <= 0 {
		return
	}
	if !s.valid {
		s.index, s.valid = 0, true
		return
	}
	if s.index == 0 || s.index > length-1 {
		s.index = length - 1
		return
	}
	s.index--
}

// Reconcile re-validates the cursor after the view was rebuilt with length
// rows.
func (s *Selection) Reconcile(length int) {
	switch {
	case length <= 0:
		s.index, s.valid = 0, false
	case !s.valid:
		s.index, s.valid = 0, true
	case s.index >= length:
		s.index = length - 1
	}
}
