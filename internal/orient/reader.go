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
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrNoOrientation is returned when a file has no orientation tag.
var ErrNoOrientation = errors.New("no orientation tag")

// The metadata key used by exiv2 and by sidecar files.
const orientationKey = "Exif.Image.Orientation"

// Reader reads the orientation of an image file.
type Reader interface {
	Orientation(path string) (Orientation, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(path string) (Orientation, error)

func (f ReaderFunc) Orientation(path string) (Orientation, error) {
	return f(path)
}

// Chain tries each reader in turn, returning the first valid orientation.
type Chain []Reader

func (c Chain) Orientation(path string) (Orientation, error) {
	err := ErrNoOrientation
	for _, r := range c {
		o, rerr := r.Orientation(path)
		if rerr == nil && o.Valid() {
			return o, nil
		}
		if rerr != nil {
			err = rerr
		}
	}
	return Normal, err
}

// Lookup returns the orientation of path, defaulting to Normal when
// the reader fails or returns an unknown code.
func Lookup(r Reader, path string) Orientation {
	if r == nil {
		return Normal
	}
	o, err := r.Orientation(path)
	if err != nil || !o.Valid() {
		return Normal
	}
	return o
}

// parseTags reads lines of the form "<tag> <value>", which is the
// format exiv2 prints with "-P kv" and the format of sidecar files.
func parseTags(rd io.Reader) (map[string]string, error) {
	tags := map[string]string{}
	s := bufio.NewScanner(rd)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 2 {
			continue
		}
		tags[fields[0]] = strings.Join(fields[1:], " ")
	}
	return tags, s.Err()
}

// fromTags extracts the orientation from a parsed tag map.
func fromTags(tags map[string]string) (Orientation, error) {
	v, ok := tags[orientationKey]
	if !ok {
		return Normal, ErrNoOrientation
	}
	return Parse(v)
}
