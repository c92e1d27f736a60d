package vals

// Set is a mutable collection of distinct hashable values. Like Dict it
// preserves insertion order, which makes its printable form deterministic.
type Set struct {
	index map[uint32][]int
	elems []setElem
	live  int
}

type setElem struct {
	value   any
	deleted bool
}

// NewSet returns a new empty set.
func NewSet() *Set {
	return &Set{index: make(map[uint32][]int)}
}

// Len returns the number of elements.
func (s *Set) Len() int { return s.live }

func (s *Set) find(v any) (int, uint32, error) {
	h, err := Hash(v)
	if err != nil {
		return -1, 0, err
	}
	for _, i := range s.index[h] {
		if !s.elems[i].deleted && Equal(s.elems[i].value, v) {
			return i, h, nil
		}
	}
	return -1, h, nil
}

// Has reports whether the value is an element.
func (s *Set) Has(v any) bool {
	i, _, err := s.find(v)
	return err == nil && i != -1
}

// Add inserts the value, ignoring duplicates. It errors when the value is
// unhashable.
func (s *Set) Add(v any) error {
	i, h, err := s.find(v)
	if err != nil {
		return err
	}
	if i != -1 {
		return nil
	}
	s.index[h] = append(s.index[h], len(s.elems))
	s.elems = append(s.elems, setElem{value: v})
	s.live++
	return nil
}

// Each calls f with each element in insertion order, stopping early when f
// returns false.
func (s *Set) Each(f func(v any) bool) {
	for _, e := range s.elems {
		if e.deleted {
			continue
		}
		if !f(e.value) {
			return
		}
	}
}
