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

// Package catalog builds the list of images shown by the slideshow.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when the image directory cannot be opened.
	ErrNotFound = errors.New("directory not found")
	// ErrIO is returned when the directory cannot be read.
	ErrIO = errors.New("directory read failed")
)

// Extensions that are accepted, lower case and without the dot.
var extensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"bmp":  true,
	"gif":  true,
	"tif":  true,
	"tiff": true,
	"webp": true,
}

// Seeded once per process.
var (
	rngLock sync.Mutex
	rng     = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Supported returns true if the file name has an image extension.
func Supported(name string) bool {
	ext := filepath.Ext(name)
	if len(ext) < 2 {
		return false
	}
	return extensions[strings.ToLower(ext[1:])]
}

// IsJPEG returns true for the file extensions that may carry EXIF orientation.
func IsJPEG(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return true
	}
	return false
}

// Load returns the paths of the image files in dir, in name order.
// Sub-directories and other non-regular entries are skipped, as are
// files without a supported extension. An empty list is not an error.
func Load(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", dir, ErrNotFound, err)
	}
	defer d.Close()
	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", dir, ErrIO, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	var paths []string
	for _, e := range entries {
		if !Supported(e.Name()) {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if !regular(p, e) {
			continue
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// regular reports whether the entry is (or links to) a regular file.
func regular(p string, e fs.DirEntry) bool {
	t := e.Type()
	if t.IsRegular() {
		return true
	}
	if t&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}

// Shuffle permutes the paths in place using the process-wide random source.
func Shuffle(paths []string) {
	rngLock.Lock()
	defer rngLock.Unlock()
	ShuffleWith(paths, rng)
}

// ShuffleWith is a Fisher-Yates shuffle using the given source.
func ShuffleWith(paths []string, r *rand.Rand) {
	for i := len(paths) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		paths[i], paths[j] = paths[j], paths[i]
	}
}
