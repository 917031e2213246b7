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

// Package show runs the slideshow: it prepares each image in turn, fades
// it in, holds it, and reacts to navigation, pause and quit requests
// made through the shared state.
package show

import (
	"errors"
	"fmt"
	"time"

	"github.com/aamcrae/slideshow/internal/log"
	"github.com/aamcrae/slideshow/internal/pipeline"
	"github.com/aamcrae/slideshow/internal/render"
	"github.com/aamcrae/slideshow/internal/state"
)

// ErrEmptyCatalog is returned by Run when there are no images to show.
var ErrEmptyCatalog = errors.New("no images to show")

// Phase is the current activity of the controller.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseTransitioning
	PhaseHolding
	PhasePaused
	PhaseTerminating
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseTransitioning:
		return "transitioning"
	case PhaseHolding:
		return "holding"
	case PhasePaused:
		return "paused"
	case PhaseTerminating:
		return "terminating"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Preparer turns a catalog entry into a drawable image.
type Preparer interface {
	Prepare(path string, vp render.Viewport) (*pipeline.Prepared, error)
}

// Controller owns the display and the current image.
// Only the goroutine calling Run (or Step) may touch the Presenter.
type Controller struct {
	State     *state.State
	Catalog   []string // Same length as State.Size()
	Preparer  Preparer
	Presenter render.Presenter
	Viewport  render.Viewport
	Timing    Timing
	Waiter    Waiter // Defaults to Sleeper

	phase    Phase
	alpha    int
	elapsed  time.Duration
	current  *pipeline.Prepared
	shown    int       // Catalog index of current
	skipping bool      // Loading after a failed image
	skipDir  state.Nav // Direction to skip failed images
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Current returns the image being shown, if any.
func (c *Controller) Current() *pipeline.Prepared {
	return c.current
}

// Run steps the controller until the state stops running.
// The current image is released before Run returns.
func (c *Controller) Run() error {
	if len(c.Catalog) == 0 {
		return ErrEmptyCatalog
	}
	if len(c.Catalog) != c.State.Size() {
		return fmt.Errorf("catalog has %d images, state has %d", len(c.Catalog), c.State.Size())
	}
	w := c.Waiter
	if w == nil {
		w = Sleeper{}
	}
	full := true
	for {
		d, idle := c.Step(full)
		if c.phase == PhaseTerminating {
			log.Debug("controller finished")
			return nil
		}
		full = w.Wait(c.State, d, idle)
	}
}

// Step runs one tick and returns how long to wait before the next one.
// idle is true when nothing will happen until the state changes.
// A tick that is not full, because the wait was cut short, only handles
// quit, navigation and pause; it does not advance the fade or the hold.
func (c *Controller) Step(full bool) (wait time.Duration, idle bool) {
	snap := c.State.Snapshot()
	if !snap.Running {
		c.terminate()
		return 0, false
	}
	if snap.Nav != state.NavNone {
		taken := c.State.TakeNavigation()
		log.Debug("%v to image %d", taken.Nav, taken.Index)
		return c.enter(taken.Index, taken.Nav)
	}
	switch c.phase {
	case PhaseLoading:
		return c.enter(snap.Index, c.skipDir)

	case PhaseTransitioning:
		if snap.Paused {
			c.draw(MaxAlpha)
			c.phase = PhasePaused
			break
		}
		if full {
			c.alpha += c.Timing.FadeStep
			if c.alpha >= MaxAlpha {
				c.alpha = MaxAlpha
				c.phase = PhaseHolding
				c.elapsed = 0
			}
			c.draw(c.alpha)
		}

	case PhaseHolding:
		if snap.Paused {
			c.phase = PhasePaused
			break
		}
		if full {
			c.elapsed += c.Timing.HoldTick
			if c.elapsed >= c.Timing.Hold {
				c.State.Advance()
				c.phase = PhaseLoading
			}
		}

	case PhasePaused:
		if !snap.Paused {
			c.phase = PhaseHolding
			c.elapsed = 0
		}
	}
	return c.tick()
}

// enter prepares and shows the image at index. The image being shown
// is kept until its replacement is ready. A failed image is skipped by
// moving on in the direction of travel.
func (c *Controller) enter(index int, dir state.Nav) (time.Duration, bool) {
	if c.skipping && c.current != nil && index == c.shown {
		// Every other image failed; keep the one already showing.
		c.skipping = false
		c.skipDir = state.NavNone
		c.alpha = MaxAlpha
		c.elapsed = 0
		c.phase = PhaseHolding
		log.Debug("still showing %d", index)
		c.draw(c.alpha)
		return c.tick()
	}
	path := c.Catalog[index]
	p, err := c.Preparer.Prepare(path, c.Viewport)
	if err != nil {
		log.Warn("Skipping image %s: %v", path, err)
		if dir == state.NavBack {
			c.State.Retreat()
		} else {
			c.State.Advance()
		}
		c.skipping = true
		c.skipDir = dir
		c.phase = PhaseLoading
		return 0, false
	}
	c.release()
	c.current = p
	c.shown = index
	c.skipping = false
	c.skipDir = state.NavNone
	c.elapsed = 0
	// Preparing can be slow, so pause is checked afterwards.
	if c.State.Snapshot().Paused {
		c.alpha = MaxAlpha
		c.phase = PhaseHolding
	} else {
		c.alpha = 0
		c.phase = PhaseTransitioning
	}
	log.Debug("showing %d: %s", index, path)
	c.draw(c.alpha)
	return c.tick()
}

func (c *Controller) tick() (time.Duration, bool) {
	switch c.phase {
	case PhaseTransitioning:
		return c.Timing.TransitionTick(), false
	case PhaseHolding:
		return c.Timing.HoldTick, false
	case PhasePaused:
		return c.Timing.PauseTick, true
	}
	return 0, false
}

func (c *Controller) draw(alpha int) {
	c.Presenter.Clear()
	if c.current != nil {
		c.Presenter.Draw(c.current.Texture, c.current.Dest, uint8(alpha))
	}
	c.Presenter.Present()
}

func (c *Controller) release() {
	if c.current != nil {
		c.Presenter.Destroy(c.current.Texture)
		c.current = nil
	}
}

func (c *Controller) terminate() {
	c.release()
	c.phase = PhaseTerminating
}
