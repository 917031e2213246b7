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

// Package rendertest provides a recording graphics backend for tests.
package rendertest

import (
	"errors"
	"image"
	"sync"

	"github.com/aamcrae/slideshow/internal/render"
)

// Texture is the handle returned by the Recorder.
type Texture struct {
	ID  int
	Img image.Image
}

func (t *Texture) Size() image.Point {
	return t.Img.Bounds().Size()
}

// Draw is one recorded draw call.
type Draw struct {
	ID    int
	Dst   image.Rectangle
	Alpha uint8
}

// Frame is the list of draws shown by one Present.
type Frame []Draw

// Recorder is a render.Backend that records every call.
type Recorder struct {
	View render.Viewport

	mu        sync.Mutex
	nextID    int
	fail      bool
	pending   Frame
	frames    []Frame
	live      map[int]bool
	destroyed []int
}

var _ render.Backend = (*Recorder)(nil)

// New returns a Recorder for the given viewport.
func New(w, h int) *Recorder {
	return &Recorder{View: render.Viewport{Width: w, Height: h}, live: map[int]bool{}}
}

func (r *Recorder) Viewport() render.Viewport {
	return r.View
}

// FailUploads makes subsequent uploads fail.
func (r *Recorder) FailUploads(fail bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = fail
}

func (r *Recorder) Upload(img image.Image) (render.Texture, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errors.New("upload failed")
	}
	r.nextID++
	r.live[r.nextID] = true
	return &Texture{ID: r.nextID, Img: img}, nil
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
}

func (r *Recorder) Draw(t render.Texture, dst image.Rectangle, alpha uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = append(r.pending, Draw{ID: t.(*Texture).ID, Dst: dst, Alpha: alpha})
}

func (r *Recorder) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, r.pending)
	r.pending = nil
}

func (r *Recorder) Destroy(t render.Texture) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := t.(*Texture).ID
	delete(r.live, id)
	r.destroyed = append(r.destroyed, id)
}

// Frames returns a copy of the presented frames.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Frame(nil), r.frames...)
}

// Last returns the most recently presented frame.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return nil, false
	}
	return r.frames[len(r.frames)-1], true
}

// Live returns the number of textures not yet destroyed.
func (r *Recorder) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Destroyed returns the IDs of destroyed textures in order.
func (r *Recorder) Destroyed() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.destroyed...)
}
