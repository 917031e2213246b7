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

// Package orient handles the EXIF orientation of images: reading the
// orientation tag and remapping pixels so the image is shown upright.
package orient

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation is the EXIF orientation code (1-8).
type Orientation int

const (
	Normal     Orientation = 1 // No transform
	FlipH      Orientation = 2 // Mirror left to right
	Rotate180  Orientation = 3
	FlipV      Orientation = 4 // Mirror top to bottom
	Transpose  Orientation = 5 // Flip horizontal, then rotate 90 clockwise
	Rotate90   Orientation = 6 // Rotate 90 clockwise
	Transverse Orientation = 7 // Flip horizontal, then rotate 270 clockwise
	Rotate270  Orientation = 8 // Rotate 270 clockwise
)

var names = map[Orientation]string{
	Normal:     "normal",
	FlipH:      "flip-horizontal",
	Rotate180:  "rotate-180",
	FlipV:      "flip-vertical",
	Transpose:  "transpose",
	Rotate90:   "rotate-90",
	Transverse: "transverse",
	Rotate270:  "rotate-270",
}

// Valid returns true if o is one of the 8 defined codes.
func (o Orientation) Valid() bool {
	return o >= Normal && o <= Rotate270
}

// SwapsAxes returns true when the transform exchanges width and height.
func (o Orientation) SwapsAxes() bool {
	return o >= Transpose && o <= Rotate270
}

func (o Orientation) String() string {
	if n, ok := names[o]; ok {
		return n
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}

// Parse converts a tag value such as "6" into an Orientation.
func Parse(s string) (Orientation, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Normal, fmt.Errorf("orientation %q: %w", s, err)
	}
	o := Orientation(v)
	if !o.Valid() {
		return Normal, fmt.Errorf("orientation %d out of range", v)
	}
	return o, nil
}
