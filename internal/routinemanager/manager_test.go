package routinemanager

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerBounds(t *testing.T) {
	m := NewManager(3)
	require.Equal(t, 3, m.Size())

	var (
		wg        sync.WaitGroup
		running   atomic.Int32
		maxSeen   atomic.Int32
		slotInUse [3]atomic.Bool
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := m.Lock()
			defer m.Unlock(n)
			assert.False(t, slotInUse[n].Swap(true))
			cur := running.Add(1)
			for {
				old := maxSeen.Load()
				if cur <= old || maxSeen.CompareAndSwap(old, cur) {
					break
				}
			}
			running.Add(-1)
			slotInUse[n].Store(false)
		}()
	}
	wg.Wait()
	require.LessOrEqual(t, maxSeen.Load(), int32(3))
}

func TestManagerMinimum(t *testing.T) {
	m := NewManager(0)
	require.Equal(t, 1, m.Size())
	n := m.Lock()
	require.Zero(t, n)
	m.Unlock(n)
}
