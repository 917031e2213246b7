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

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects output into a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := GetLevel()
	t.Cleanup(func() {
		SetOutput(prevOut)
		SetLevel(prevLevel)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	Info("shown %d", 2)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO] shown 2\n")

	buf.Reset()
	SetLevel(LevelDebug)
	Debug("visible")
	assert.Equal(t, "[DEBUG] visible\n", buf.String())
}

func TestErrorAtHighestLevel(t *testing.T) {
	buf := capture(t)

	SetLevel(LevelError)
	Warn("quiet")
	Error("loud")
	assert.Equal(t, "[ERROR] loud\n", buf.String())
}

func TestSetLevelRoundTrip(t *testing.T) {
	capture(t)
	SetLevel(LevelWarn)
	assert.Equal(t, LevelWarn, GetLevel())
}
