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

package orient

import (
	"image"

	"golang.org/x/image/draw"
)

// ToRGBA returns img as an *image.RGBA with its origin at (0, 0).
// The image is returned unchanged if it already is one.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Apply returns a copy of img transformed so that an image tagged with
// orientation o is presented upright. Unknown codes are treated as Normal.
// The source image is never modified.
func Apply(img image.Image, o Orientation) *image.RGBA {
	src := ToRGBA(img)
	if !o.Valid() || o == Normal {
		if src == img {
			// Copy, so that the caller always owns the result.
			dst := image.NewRGBA(src.Rect)
			copy(dst.Pix, src.Pix)
			return dst
		}
		return src
	}
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	dw, dh := sw, sh
	if o.SwapsAxes() {
		dw, dh = sh, sw
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for sy := 0; sy < sh; sy++ {
		row := src.Pix[sy*src.Stride:]
		for sx := 0; sx < sw; sx++ {
			var dx, dy int
			switch o {
			case FlipH:
				dx, dy = sw-1-sx, sy
			case Rotate180:
				dx, dy = sw-1-sx, sh-1-sy
			case FlipV:
				dx, dy = sx, sh-1-sy
			case Transpose:
				dx, dy = sy, sx
			case Rotate90:
				dx, dy = sh-1-sy, sx
			case Transverse:
				dx, dy = sh-1-sy, sw-1-sx
			case Rotate270:
				dx, dy = sy, sw-1-sx
			}
			d := dy*dst.Stride + dx*4
			copy(dst.Pix[d:d+4], row[sx*4:sx*4+4])
		}
	}
	return dst
}
