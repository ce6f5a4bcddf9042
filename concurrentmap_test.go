package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentMapAccessInsertsDefault(t *testing.T) {
	cm := NewConcurrentMap[int, float64](4)
	a := cm.Access(10)
	assert.Equal(t, 0.0, *a.Value())
	*a.Value() = 3.5
	a.Release()

	flat := cm.BuildOrdinaryMap()
	assert.Equal(t, 3.5, flat[10])
}

func TestConcurrentMapErase(t *testing.T) {
	cm := NewConcurrentMap[int, int](4)
	a := cm.Access(1)
	*a.Value() = 5
	a.Release()

	cm.Erase(1)
	flat := cm.BuildOrdinaryMap()
	_, ok := flat[1]
	assert.False(t, ok)
}

func TestConcurrentMapAddConcurrentAccumulatesPerKey(t *testing.T) {
	cm := NewConcurrentMap[int, float64](157)
	var wg sync.WaitGroup
	for key := 0; key < 500; key++ {
		key := key
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				cm.Add(key, 1.0, func(a, b float64) float64 { return a + b })
			}
		}()
	}
	wg.Wait()

	flat := cm.BuildOrdinaryMap()
	require.Len(t, flat, 500)
	for key := 0; key < 500; key++ {
		assert.Equal(t, 100.0, flat[key])
	}
}

func TestConcurrentMapNegativeKeysShardConsistently(t *testing.T) {
	cm := NewConcurrentMap[int, int](7)
	a := cm.Access(-3)
	*a.Value() = 42
	a.Release()

	flat := cm.BuildOrdinaryMap()
	assert.Equal(t, 42, flat[-3])
}

func TestNewConcurrentMapRejectsNonPositiveShardCount(t *testing.T) {
	assert.Panics(t, func() {
		NewConcurrentMap[int, int](0)
	})
}
