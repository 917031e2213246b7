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

package catalog

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
}

func TestLoadFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.jpg", "B.JPG", "c.Png", "d.bmp", "e.txt", "f", "g.jpeg.bak", ".jpg"} {
		touch(t, dir, n)
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0755))

	paths, err := Load(dir)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		assert.Equal(t, dir, filepath.Dir(p))
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{".jpg", "B.JPG", "a.jpg", "c.Png", "d.bmp"}, names)
}

func TestLoadSymlinks(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "real.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d"), 0755))
	if err := os.Symlink(filepath.Join(dir, "real.png"), filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "d"), filepath.Join(dir, "dir.png")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), filepath.Join(dir, "dangling.png")))

	paths, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "link.png"), filepath.Join(dir, "real.png")}, paths)
}

func TestLoadEmptyIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "notes.txt")
	paths, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("x.TIFF"))
	assert.True(t, Supported("dir.d/x.webp"))
	assert.False(t, Supported("x."))
	assert.False(t, Supported("jpg"))
	assert.True(t, IsJPEG("x.JPEG"))
	assert.False(t, IsJPEG("x.png"))
}

func TestShuffleIsPermutation(t *testing.T) {
	in := []string{"a", "b", "c", "d", "e", "f", "g"}
	out := append([]string(nil), in...)
	Shuffle(out)
	sorted := append([]string(nil), out...)
	sort.Strings(sorted)
	assert.Equal(t, in, sorted)
}

func TestShuffleSmallInputs(t *testing.T) {
	Shuffle(nil)
	one := []string{"only"}
	Shuffle(one)
	assert.Equal(t, []string{"only"}, one)
}

// Every permutation of 3 items should turn up close to 1/6 of the time.
func TestShuffleUnbiased(t *testing.T) {
	const trials = 60000
	counts := map[string]int{}
	for seed := int64(0); seed < trials; seed++ {
		p := []string{"a", "b", "c"}
		ShuffleWith(p, rand.New(rand.NewSource(seed)))
		counts[p[0]+p[1]+p[2]]++
	}
	require.Len(t, counts, 6)
	expected := float64(trials) / 6
	for perm, n := range counts {
		assert.InDelta(t, expected, float64(n), expected*0.05, "permutation %s", perm)
	}
}
