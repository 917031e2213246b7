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
)

// MaxAlpha is the alpha value of a fully opaque image.
const MaxAlpha = 255

// Timing controls the pace of the slideshow.
type Timing struct {
	FadeStep   int           // Alpha increase per transition tick
	Transition time.Duration // Length of the fade in
	Hold       time.Duration // How long each image is shown after the fade
	HoldTick   time.Duration // Tick length while holding
	PauseTick  time.Duration // Tick length while paused
}

// DefaultTiming is a 1 second fade in 17 steps of 15, followed by a
// 5 second hold.
func DefaultTiming() Timing {
	return Timing{
		FadeStep:   15,
		Transition: 1000 * time.Millisecond,
		Hold:       5000 * time.Millisecond,
		HoldTick:   100 * time.Millisecond,
		PauseTick:  100 * time.Millisecond,
	}
}

// FadeSteps returns the number of ticks taken to go from 0 to MaxAlpha.
func (t Timing) FadeSteps() int {
	step := t.FadeStep
	if step <= 0 {
		step = 1
	}
	return (MaxAlpha + step - 1) / step
}

// TransitionTick returns the time between fade steps.
func (t Timing) TransitionTick() time.Duration {
	return t.Transition / time.Duration(t.FadeSteps())
}
