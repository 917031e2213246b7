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

package fyneview

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/aamcrae/slideshow/internal/render"
)

// ErrNoDisplay is returned when no monitor is connected.
var ErrNoDisplay = errors.New("no display found")

// DisplaySize returns the current mode of the primary monitor.
// It must be called from the main goroutine before the window is created.
func DisplaySize() (render.Viewport, error) {
	if err := glfw.Init(); err != nil {
		return render.Viewport{}, fmt.Errorf("display init: %w", err)
	}
	defer glfw.Terminate()
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return render.Viewport{}, ErrNoDisplay
	}
	mode := m.GetVideoMode()
	if mode == nil {
		return render.Viewport{}, ErrNoDisplay
	}
	return render.Viewport{Width: mode.Width, Height: mode.Height}, nil
}
