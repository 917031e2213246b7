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

// A sidecar is a file alongside the image with ".exif" appended to the
// name. Each line is:
// <exif-tag> <value>
// which is the same format that exiv2 outputs, so the same parser is used.

import (
	"os"
)

// SidecarReader reads the orientation from a sidecar file.
type SidecarReader struct{}

// SidecarPath returns the sidecar file name for an image.
func SidecarPath(path string) string {
	return path + ".exif"
}

func (SidecarReader) Orientation(path string) (Orientation, error) {
	f, err := os.Open(SidecarPath(path))
	if err != nil {
		return Normal, err
	}
	defer f.Close()
	tags, err := parseTags(f)
	if err != nil {
		return Normal, err
	}
	return fromTags(tags)
}
