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

// Package vipsdec decodes images and reads orientation with libvips.
// It is kept apart from the pipeline so that only builds using it need
// cgo and the libvips library.
package vipsdec

import (
	"fmt"
	"image"

	"github.com/davidbyttow/govips/v2/vips"

	"github.com/aamcrae/slideshow/internal/orient"
)

// startup initialises libvips, panicking on failure.
var startup = func() {
	// Make vips less noisy.
	vips.LoggingSettings(nil, vips.LogLevelError)
	vips.Startup(nil)
}

// Start initialises libvips. It must be called before Decoder
// is used, and Stop called when finished.
func Start() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("vips startup: %v", r)
		}
	}()
	startup()
	return nil
}

// Stop shuts down libvips.
func Stop() {
	vips.Shutdown()
}

// Decoder decodes images with libvips.
type Decoder struct{}

func (Decoder) Decode(path string) (image.Image, error) {
	vimg, err := vips.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	defer vimg.Close()
	return vimg.ToImage(vips.NewDefaultExportParams())
}

// Orientation reads the EXIF orientation through libvips.
var Orientation = orient.ReaderFunc(func(path string) (orient.Orientation, error) {
	vimg, err := vips.NewImageFromFile(path)
	if err != nil {
		return orient.Normal, err
	}
	defer vimg.Close()
	o := orient.Orientation(vimg.Orientation())
	if !o.Valid() {
		return orient.Normal, orient.ErrNoOrientation
	}
	return o, nil
})
