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

// Package input turns key presses into changes of the shared slideshow state.
package input

import (
	"fmt"
	"time"

	"github.com/aamcrae/slideshow/internal/log"
	"github.com/aamcrae/slideshow/internal/state"
)

// Key is a slideshow control.
type Key int

const (
	KeyNext Key = iota
	KeyBack
	KeyPause
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyNext:
		return "next"
	case KeyBack:
		return "back"
	case KeyPause:
		return "pause"
	case KeyQuit:
		return "quit"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// DefaultInterval is how often the poller checks for input.
const DefaultInterval = 10 * time.Millisecond

// Source returns pending keys without blocking.
type Source interface {
	Poll() (Key, bool)
}

// Queue is a bounded Source that is filled from window event callbacks.
type Queue struct {
	ch chan Key
}

// NewQueue returns a queue holding up to n keys.
func NewQueue(n int) *Queue {
	return &Queue{ch: make(chan Key, n)}
}

// Push adds a key, returning false if the queue is full and the key was dropped.
// Push never blocks, so it is safe to call from the UI event loop.
func (q *Queue) Push(k Key) bool {
	select {
	case q.ch <- k:
		return true
	default:
		log.Warn("input queue full, dropped %v", k)
		return false
	}
}

// Poll returns the next key if there is one.
func (q *Queue) Poll() (Key, bool) {
	select {
	case k := <-q.ch:
		return k, true
	default:
		return 0, false
	}
}

// Poller applies keys from a Source to the shared state.
type Poller struct {
	Source   Source
	State    *state.State
	Interval time.Duration // Defaults to DefaultInterval
}

// Run polls until the state stops running. A quit key stops the state.
func (p *Poller) Run() error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		for k, ok := p.Source.Poll(); ok; k, ok = p.Source.Poll() {
			p.apply(k)
		}
		select {
		case <-p.State.Done():
			log.Debug("input poller finished")
			return nil
		case <-t.C:
		}
	}
}

func (p *Poller) apply(k Key) {
	log.Debug("key: %v", k)
	switch k {
	case KeyNext:
		p.State.SetNavigation(state.NavNext)
	case KeyBack:
		p.State.SetNavigation(state.NavBack)
	case KeyPause:
		paused := p.State.TogglePause()
		log.Debug("paused: %v", paused)
	case KeyQuit:
		p.State.Stop()
	}
}
