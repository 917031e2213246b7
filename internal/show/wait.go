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

package show

import (
	"time"

	"github.com/aamcrae/slideshow/internal/state"
)

// Waiter paces the controller between ticks.
// Wait returns true if the whole tick d elapsed, or false if it was cut
// short by a state change. When idle is true the controller has nothing
// to do until the state changes, and d is only a polling interval.
type Waiter interface {
	Wait(s *state.State, d time.Duration, idle bool) bool
}

// Sleeper waits out every tick, checking the state only between ticks.
// Only a stop cuts a tick short.
type Sleeper struct{}

func (Sleeper) Wait(s *state.State, d time.Duration, _ bool) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.Done():
		return false
	}
}

// Notifier wakes as soon as the state changes, and sleeps without a
// timeout while idle. Ticks cut short do not count towards the fade or
// hold, so the number of ticks for each is the same as with Sleeper.
type Notifier struct{}

func (Notifier) Wait(s *state.State, d time.Duration, idle bool) bool {
	if idle {
		select {
		case <-s.Changed():
		case <-s.Done():
		}
		return false
	}
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-s.Changed():
		return false
	case <-s.Done():
		return false
	}
}
