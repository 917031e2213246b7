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

// Package render defines the graphics collaborator used by the slideshow:
// uploading decoded images, and drawing them with an alpha value.
package render

import (
	"fmt"
	"image"
)

// Viewport is the size of the display in pixels.
type Viewport struct {
	Width, Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Valid returns true if both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Texture is an opaque handle to an uploaded image.
type Texture interface {
	// Size returns the pixel size of the uploaded image.
	Size() image.Point
}

// Uploader creates textures from decoded images.
type Uploader interface {
	Upload(img image.Image) (Texture, error)
}

// Presenter draws textures and shows the finished frame.
// A frame is built by Clear, zero or more Draw calls, then Present.
type Presenter interface {
	Clear()
	Draw(t Texture, dst image.Rectangle, alpha uint8)
	Present()
	Destroy(t Texture)
}

// Backend is the complete graphics collaborator.
type Backend interface {
	Viewport() Viewport
	Uploader
	Presenter
}
