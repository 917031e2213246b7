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

package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New(3)
	assert.Equal(t, Snapshot{Index: 0, Running: true}, s.Snapshot())
	assert.Equal(t, 3, s.Size())
	assert.Panics(t, func() { New(0) })
}

func TestTakeNavigationWraps(t *testing.T) {
	s := New(3)
	s.SetNavigation(NavBack)
	snap := s.TakeNavigation()
	assert.Equal(t, 2, snap.Index)
	assert.Equal(t, NavBack, snap.Nav)
	assert.Equal(t, NavNone, s.Snapshot().Nav)

	s.SetNavigation(NavNext)
	assert.Equal(t, 0, s.TakeNavigation().Index)

	// Nothing pending leaves the index alone.
	snap = s.TakeNavigation()
	assert.Equal(t, 0, snap.Index)
	assert.Equal(t, NavNone, snap.Nav)
}

func TestLastNavigationWins(t *testing.T) {
	s := New(5)
	s.SetNavigation(NavNext)
	s.SetNavigation(NavBack)
	snap := s.TakeNavigation()
	assert.Equal(t, 4, snap.Index, "only the later request is applied")
	assert.Equal(t, 4, s.Snapshot().Index)
}

func TestAdvance(t *testing.T) {
	s := New(2)
	assert.Equal(t, 1, s.Advance())
	assert.Equal(t, 0, s.Advance())
}

func TestRetreat(t *testing.T) {
	s := New(3)
	assert.Equal(t, 2, s.Retreat())
	assert.Equal(t, 1, s.Retreat())
	assert.Equal(t, 1, s.Snapshot().Index)
}

func TestPause(t *testing.T) {
	s := New(1)
	assert.True(t, s.TogglePause())
	assert.True(t, s.Snapshot().Paused)
	assert.False(t, s.TogglePause())
	s.SetPaused(true)
	assert.True(t, s.Snapshot().Paused)
}

func TestStop(t *testing.T) {
	s := New(1)
	select {
	case <-s.Done():
		t.Fatal("done before stop")
	default:
	}
	s.Stop()
	s.Stop()
	s.SetRunning(true)
	assert.False(t, s.Running())
	<-s.Done()

	// Navigation after stop is ignored.
	s.SetNavigation(NavNext)
	assert.Equal(t, NavNone, s.Snapshot().Nav)
}

func TestChangedCoalesces(t *testing.T) {
	s := New(4)
	s.SetNavigation(NavNext)
	s.TogglePause()
	<-s.Changed()
	select {
	case <-s.Changed():
		t.Fatal("expected a single coalesced notification")
	default:
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New(7)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if i%2 == 0 {
					s.SetNavigation(NavNext)
				} else {
					s.TogglePause()
				}
			}
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 1000; j++ {
			snap := s.TakeNavigation()
			assert.True(t, snap.Index >= 0 && snap.Index < 7)
		}
	}()
	wg.Wait()
	assert.True(t, s.Running())
}
