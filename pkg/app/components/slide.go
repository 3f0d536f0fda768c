package components

// Slide tracks the row slide-in animation that follows a page change.
type Slide struct {
	frame  int
	frames int
}

func (s *Slide) Start(frames int) {
	if frames < 1 {
		frames = 1
	}
	s.frames = frames
	s.frame = 0
}

func (s *Slide) Active() bool {
	return s.frames > 0 && s.frame < s.frames
}

// Step advances one frame and reports whether that was the last one.
func (s *Slide) Step() bool {
	if !s.Active() {
		return false
	}
	s.frame++
	return s.frame >= s.frames
}

// Offset returns how far right the incoming row sits, easing out towards 0.
func (s *Slide) Offset(width int) int {
	if !s.Active() || width <= 0 {
		return 0
	}
	remaining := 1 - float64(s.frame)/float64(s.frames)
	return int(float64(width) * remaining * remaining)
}
