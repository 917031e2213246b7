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
	"bytes"
	"os/exec"

	"github.com/aamcrae/slideshow/internal/log"
)

// Exiv2Reader reads the orientation tag by running the exiv2 utility.
type Exiv2Reader struct {
	Command string // Defaults to "exiv2"
}

func (e Exiv2Reader) Orientation(path string) (Orientation, error) {
	name := e.Command
	if name == "" {
		name = "exiv2"
	}
	cmd := exec.Command(name, "-q", "-P", "kv", "-K", orientationKey, path)
	outp, err := cmd.Output()
	log.Debug("%s: exiv2 output: %q", path, outp)
	if err != nil {
		// Very likely there are no exif headers in this file.
		return Normal, err
	}
	tags, err := parseTags(bytes.NewReader(outp))
	if err != nil {
		return Normal, err
	}
	return fromTags(tags)
}
