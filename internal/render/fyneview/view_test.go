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
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamcrae/slideshow/internal/input"
	"github.com/aamcrae/slideshow/internal/render"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name fyne.KeyName
		key  input.Key
	}{
		{fyne.KeyRight, input.KeyNext},
		{"N", input.KeyNext},
		{fyne.KeyLeft, input.KeyBack},
		{"P", input.KeyBack},
		{fyne.KeyBackspace, input.KeyBack},
		{fyne.KeySpace, input.KeyPause},
		{"Q", input.KeyQuit},
		{fyne.KeyEscape, input.KeyQuit},
	}
	for _, tc := range tests {
		k, ok := Key(tc.name)
		assert.True(t, ok, tc.name)
		assert.Equal(t, tc.key, k, tc.name)
	}
	_, ok := Key(fyne.KeyUp)
	assert.False(t, ok)
}

func newView(t *testing.T) *View {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	q := input.NewQueue(4)
	return New(a, "test", render.Viewport{Width: 200, Height: 100}, color.Black, false, q)
}

func TestPresent(t *testing.T) {
	v := newView(t)
	tex, err := v.Upload(image.NewRGBA(image.Rect(0, 0, 40, 20)))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 20), tex.Size())

	v.Clear()
	v.Draw(tex, image.Rect(0, 0, 200, 100), 51)
	v.Present()
	objs := v.Objects()
	require.Len(t, objs, 2)
	img := objs[1].(*canvas.Image)
	assert.InDelta(t, 0.8, img.Translucency, 1e-9)
	assert.Equal(t, fyne.NewSize(200, 100), img.Size())

	v.Clear()
	v.Present()
	assert.Len(t, v.Objects(), 1)
}

func TestPresentDoesNotChangeShownObjects(t *testing.T) {
	v := newView(t)
	tex, err := v.Upload(image.NewRGBA(image.Rect(0, 0, 40, 20)))
	require.NoError(t, err)

	v.Clear()
	v.Draw(tex, image.Rect(0, 0, 200, 100), 0)
	v.Present()
	shown := v.Objects()[1].(*canvas.Image)

	v.Clear()
	v.Draw(tex, image.Rect(10, 10, 110, 60), 255)
	v.Present()
	next := v.Objects()[1].(*canvas.Image)
	assert.NotSame(t, shown, next)
	assert.InDelta(t, 1.0, shown.Translucency, 1e-9)
	assert.Equal(t, fyne.NewSize(200, 100), shown.Size())
	assert.Zero(t, next.Translucency)
	assert.Equal(t, fyne.NewPos(10, 10), next.Position())

	// A destroyed texture keeps the shown frame intact and is left out
	// of later frames.
	v.Destroy(tex)
	assert.NotNil(t, next.Image)
	v.Clear()
	v.Draw(tex, image.Rect(0, 0, 200, 100), 255)
	v.Present()
	assert.Len(t, v.Objects(), 1)
}
