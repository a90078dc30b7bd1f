package render

// Scope owns GPU resources for the lifetime of the render loop and releases
// them in reverse acquisition order.
type Scope struct {
	held     []Releaser
	released bool
}

func NewScope() *Scope {
	return &Scope{}
}

// Hold registers r for release. Holding into a released scope releases r immediately.
func (s *Scope) Hold(r Releaser) {
	if s.released {
		r.Release()
		return
	}
	s.held = append(s.held, r)
}

// Release is safe to call more than once.
func (s *Scope) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.held) - 1; i >= 0; i-- {
		s.held[i].Release()
	}
	s.held = nil
}

func (s *Scope) Len() int { return len(s.held) }
