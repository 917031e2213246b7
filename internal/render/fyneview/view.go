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

// Package fyneview shows the slideshow in a full screen fyne window.
package fyneview

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/aamcrae/slideshow/internal/input"
	"github.com/aamcrae/slideshow/internal/log"
	"github.com/aamcrae/slideshow/internal/render"
)

// Texture is an uploaded image. Each presented frame wraps it in a new
// canvas object so that objects are never changed once shown.
type Texture struct {
	mu   sync.Mutex
	img  image.Image
	size image.Point
}

func (t *Texture) image() image.Image {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.img
}

func (t *Texture) Size() image.Point {
	return t.size
}

type staged struct {
	tex   *Texture
	dst   image.Rectangle
	alpha uint8
}

// View is a render.Backend drawing into a fyne window.
// Keys pressed in the window are pushed to a key queue.
type View struct {
	app  fyne.App
	win  fyne.Window
	vp   render.Viewport
	bg   color.Color
	keys *input.Queue

	mu    sync.Mutex
	frame []staged
}

var _ render.Backend = (*View)(nil)

// New creates the window. fullscreen is false when the viewport was
// given on the command line rather than detected.
func New(a fyne.App, title string, vp render.Viewport, bg color.Color, fullscreen bool, keys *input.Queue) *View {
	win := a.NewWindow(title)
	win.SetMaster()
	win.SetPadded(false)
	v := &View{app: a, win: win, vp: vp, bg: bg, keys: keys}
	win.SetContent(v.content(nil))
	if fullscreen {
		win.SetFullScreen(true)
	}
	win.Resize(v.toSize(vp.Width, vp.Height))
	if dc, ok := win.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			log.Debug("Key: %s", ev.Name)
			if k, ok := Key(ev.Name); ok {
				keys.Push(k)
			}
		})
	}
	// Closing the window is the same as quitting; the window is
	// torn down once the slideshow has stopped.
	win.SetCloseIntercept(func() {
		keys.Push(input.KeyQuit)
	})
	return v
}

// Key maps a fyne key name to a slideshow key.
func Key(name fyne.KeyName) (input.Key, bool) {
	switch name {
	case fyne.KeyRight, "N":
		return input.KeyNext, true
	case fyne.KeyLeft, "P", fyne.KeyBackspace:
		return input.KeyBack, true
	case fyne.KeySpace:
		return input.KeyPause, true
	case "Q", fyne.KeyEscape:
		return input.KeyQuit, true
	}
	return 0, false
}

// scale converts pixels to fyne units.
func (v *View) scale() float32 {
	s := v.win.Canvas().Scale()
	if s <= 0 {
		return 1
	}
	return s
}

func (v *View) toSize(w, h int) fyne.Size {
	s := v.scale()
	return fyne.NewSize(float32(w)/s, float32(h)/s)
}

func (v *View) toPos(p image.Point) fyne.Position {
	s := v.scale()
	return fyne.NewPos(float32(p.X)/s, float32(p.Y)/s)
}

func (v *View) Viewport() render.Viewport {
	return v.vp
}

func (v *View) Upload(img image.Image) (render.Texture, error) {
	return &Texture{img: img, size: img.Bounds().Size()}, nil
}

func (v *View) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frame = v.frame[:0]
}

func (v *View) Draw(t render.Texture, dst image.Rectangle, alpha uint8) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.frame = append(v.frame, staged{tex: t.(*Texture), dst: dst, alpha: alpha})
}

// content builds a container holding the background and the frame.
// Every object is fully set up before the container is returned.
func (v *View) content(frame []staged) *fyne.Container {
	bg := canvas.NewRectangle(v.bg)
	bg.Resize(v.toSize(v.vp.Width, v.vp.Height))
	objs := []fyne.CanvasObject{bg}
	for _, s := range frame {
		img := s.tex.image()
		if img == nil {
			continue
		}
		obj := canvas.NewImageFromImage(img)
		obj.FillMode = canvas.ImageFillStretch
		obj.ScaleMode = canvas.ImageScaleSmooth
		obj.Translucency = 1 - float64(s.alpha)/255
		obj.Move(v.toPos(s.dst.Min))
		obj.Resize(v.toSize(s.dst.Dx(), s.dst.Dy()))
		objs = append(objs, obj)
	}
	return container.NewWithoutLayout(objs...)
}

// Present shows the staged frame. The new content replaces the old
// through the canvas, which serialises it with painting.
func (v *View) Present() {
	v.mu.Lock()
	box := v.content(v.frame)
	v.mu.Unlock()
	v.win.Canvas().SetContent(box)
}

// Destroy drops the image held by the texture.
func (v *View) Destroy(t render.Texture) {
	tex := t.(*Texture)
	tex.mu.Lock()
	defer tex.mu.Unlock()
	tex.img = nil
}

// Objects returns the objects currently shown, background first.
func (v *View) Objects() []fyne.CanvasObject {
	if box, ok := v.win.Canvas().Content().(*fyne.Container); ok {
		return box.Objects
	}
	return nil
}

// Run shows the window and runs the fyne event loop until Quit is called.
// It must be called from the main goroutine.
func (v *View) Run() {
	v.win.Show()
	v.app.Run()
}

// Quit ends the fyne event loop.
func (v *View) Quit() {
	v.app.Quit()
}
