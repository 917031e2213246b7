// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package state holds the state shared between the input poller and
// the slideshow controller. Every field is guarded by a single lock.
package state

import (
	"fmt"
	"sync"
)

// Nav is a pending navigation request.
type Nav int

const (
	NavNone Nav = iota
	NavNext
	NavBack
)

func (n Nav) String() string {
	switch n {
	case NavNone:
		return "none"
	case NavNext:
		return "next"
	case NavBack:
		return "back"
	}
	return fmt.Sprintf("nav(%d)", int(n))
}

// Snapshot is a consistent copy of the shared state.
type Snapshot struct {
	Index   int
	Paused  bool
	Nav     Nav
	Running bool
}

// State is the shared slideshow state.
type State struct {
	mu      sync.Mutex
	size    int
	index   int
	paused  bool
	nav     Nav
	running bool

	changed chan struct{} // Signalled (without blocking) on every change
	done    chan struct{} // Closed when running becomes false
}

// New creates the state for a catalog of size images, running and
// positioned at the first image. size must be positive.
func New(size int) *State {
	if size <= 0 {
		panic("state: catalog size must be positive")
	}
	return &State{
		size:    size,
		running: true,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Size returns the catalog size.
func (s *State) Size() int {
	return s.size
}

// notify must be called with the lock held.
func (s *State) notify() {
	select {
	case s.changed <- struct{}{}:
	default:
	}
}

// Snapshot returns all fields, read under one lock acquisition.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Index: s.index, Paused: s.paused, Nav: s.nav, Running: s.running}
}

// Running returns true until Stop is called.
func (s *State) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SetNavigation records a navigation request, replacing any request
// that has not yet been taken.
func (s *State) SetNavigation(n Nav) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.nav = n
	s.notify()
}

// TogglePause flips the pause flag and returns the new value.
func (s *State) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	s.notify()
	return s.paused
}

// SetPaused sets the pause flag.
func (s *State) SetPaused(p bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = p
	s.notify()
}

// SetRunning sets the running flag. Once stopped, the state cannot be restarted.
func (s *State) SetRunning(r bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r || !s.running {
		return
	}
	s.running = false
	close(s.done)
	s.notify()
}

// Stop is SetRunning(false).
func (s *State) Stop() {
	s.SetRunning(false)
}

// TakeNavigation consumes the pending navigation request, moving the
// index one place forward or back (wrapping around). The returned
// snapshot is taken in the same lock acquisition; its Nav field holds
// the request that was taken.
func (s *State) TakeNavigation() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.nav
	switch n {
	case NavNext:
		s.index = (s.index + 1) % s.size
	case NavBack:
		s.index = (s.index - 1 + s.size) % s.size
	}
	s.nav = NavNone
	return Snapshot{Index: s.index, Paused: s.paused, Nav: n, Running: s.running}
}

// Advance moves to the next image and returns the new index.
func (s *State) Advance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = (s.index + 1) % s.size
	return s.index
}

// Retreat moves to the previous image and returns the new index.
func (s *State) Retreat() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = (s.index - 1 + s.size) % s.size
	return s.index
}

// Changed returns a channel that receives a value after state changes.
// Changes that happen while a value is pending are coalesced.
func (s *State) Changed() <-chan struct{} {
	return s.changed
}

// Done returns a channel that is closed when the state stops running.
func (s *State) Done() <-chan struct{} {
	return s.done
}
