package core_test

// scripted returns its values in order, wrapping around, reduced modulo n.
type scripted struct {
	vals  []int
	i     int
	calls int
}

func (s *scripted) Intn(n int) int {
	s.calls++
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

type memoryTop struct {
	score int
	ok    bool
	saves []int

	loadErr, saveErr error
}

func (m *memoryTop) Load() (int, bool, error) {
	return m.score, m.ok, m.loadErr
}

func (m *memoryTop) Save(score int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.score, m.ok = score, true
	m.saves = append(m.saves, score)
	return nil
}
