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

package pipeline

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/aamcrae/slideshow/internal/render"
)

// MaxTextureEdge is the largest edge length of an uploaded image.
const MaxTextureEdge = 2048

// ClampSize returns the size of a w x h image scaled down so that
// neither edge exceeds limit. The longer edge becomes exactly limit.
// Sizes already within the limit are returned unchanged.
func ClampSize(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	longest := w
	if h > longest {
		longest = h
	}
	// Integer arithmetic keeps the longer edge exact.
	nw, nh := w*limit/longest, h*limit/longest
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// Clamp downscales img with Lanczos resampling if either edge exceeds limit.
func Clamp(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := ClampSize(b.Dx(), b.Dy(), limit)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}

// Fit returns the largest rectangle with the aspect ratio of a w x h
// image that fits in the viewport, centred in it.
func Fit(w, h int, vp render.Viewport) image.Rectangle {
	if w <= 0 || h <= 0 {
		return image.Rectangle{}
	}
	aspect := float64(w) / float64(h)
	var tw, th int
	if aspect >= 1.0 {
		// Landscape or square
		tw = vp.Width
		th = int(float64(vp.Width) / aspect)
		if th > vp.Height {
			th = vp.Height
			tw = int(float64(vp.Height) * aspect)
		}
	} else {
		// Portrait
		th = vp.Height
		tw = int(float64(vp.Height) * aspect)
		if tw > vp.Width {
			tw = vp.Width
			th = int(float64(vp.Width) / aspect)
		}
	}
	x := (vp.Width - tw) / 2
	y := (vp.Height - th) / 2
	return image.Rect(x, y, x+tw, y+th)
}
