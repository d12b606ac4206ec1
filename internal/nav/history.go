package nav

// screenStack records the screens visited before the focused one.
type screenStack struct {
	items []int
}

func (s *screenStack) Push(i int) {
	s.items = append(s.items, i)
}

func (s *screenStack) Pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

func (s screenStack) Len() int {
	return len(s.items)
}
