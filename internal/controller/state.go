package controller

import (
	"sync"

	"github.com/pixelbar/pixeld/internal/color"
)

// lastState records the most recently confirmed GroupSet. Reads may run
// concurrently; a read never observes a half-written set.
type lastState struct {
	mu  sync.RWMutex
	gs  color.GroupSet
	set bool
}

func (s *lastState) read() (color.GroupSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gs, s.set
}

func (s *lastState) write(gs color.GroupSet) {
	s.mu.Lock()
	s.gs = gs
	s.set = true
	s.mu.Unlock()
}
