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

// Package pipeline prepares images for display: decode, orient,
// bound the size, compute the placement and upload to the backend.
package pipeline

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/aamcrae/slideshow/internal/catalog"
	"github.com/aamcrae/slideshow/internal/log"
	"github.com/aamcrae/slideshow/internal/orient"
	"github.com/aamcrae/slideshow/internal/render"
)

// Prepared is an image ready to be drawn.
type Prepared struct {
	Path    string          // Source file
	Texture render.Texture  // Uploaded image
	Size    image.Point     // Size of the uploaded image
	Dest    image.Rectangle // Placement within the viewport
}

// Pipeline holds the collaborators used to prepare images.
// It keeps no state between calls.
type Pipeline struct {
	Decoder  Decoder
	Orient   orient.Reader // Consulted for JPEG files only; may be nil
	Uploader render.Uploader
	MaxEdge  int        // Defaults to MaxTextureEdge
	Caption  *Captioner // Optional file name overlay
}

// Prepare loads the image at path and places it in the viewport.
// A failure to read or decode the file is returned as a *DecodeError.
func (p *Pipeline) Prepare(path string, vp render.Viewport) (*Prepared, error) {
	img, err := p.Decoder.Decode(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	o := orient.Normal
	if catalog.IsJPEG(path) {
		o = orient.Lookup(p.Orient, path)
	}
	surface := image.Image(orient.Apply(img, o))
	img = nil
	maxEdge := p.MaxEdge
	if maxEdge <= 0 {
		maxEdge = MaxTextureEdge
	}
	surface = Clamp(surface, maxEdge)
	if p.Caption != nil {
		rgba := orient.ToRGBA(surface)
		if err := p.Caption.Draw(rgba, filepath.Base(path)); err != nil {
			log.Warn("%s: caption: %v", path, err)
		}
		surface = rgba
	}
	size := surface.Bounds().Size()
	dest := Fit(size.X, size.Y, vp)
	tex, err := p.Uploader.Upload(surface)
	if err != nil {
		return nil, fmt.Errorf("%s: upload: %w", path, err)
	}
	log.Debug("%s: %v, %dx%d placed at %v", path, o, size.X, size.Y, dest)
	return &Prepared{Path: path, Texture: tex, Size: size, Dest: dest}, nil
}
