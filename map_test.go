package probemap

import (
	"fmt"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbingMap_Basic(t *testing.T) {
	pm := New[int](16)

	// Insert and Get
	require.True(t, pm.Insert("foo", 42))

	v, ok := pm.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Update existing key
	require.False(t, pm.Insert("foo", 100))
	assert.Equal(t, 1, pm.Len())

	v, ok = pm.Get("foo")
	require.True(t, ok)
	assert.Equal(t, 100, v)

	// Get non-existent key
	_, ok = pm.Get("bar")
	assert.False(t, ok)
	assert.False(t, pm.Contains("bar"))
	assert.True(t, pm.Contains("foo"))
}

func TestProbingMap_ContainsAfterOtherInserts(t *testing.T) {
	pm := New[int](3)
	keys := make([]string, 0, 300)

	for i := range 300 {
		key := fmt.Sprintf("word%d", i)
		pm.Insert(key, i)
		keys = append(keys, key)

		for _, k := range keys {
			require.Truef(t, pm.Contains(k), "lost %q after inserting %q", k, key)
		}
	}
}

func TestProbingMap_Scenario191(t *testing.T) {
	pm := New[int](191)

	for i := range 96 {
		pm.Insert(fmt.Sprintf("token%d", i), i)
	}

	assert.Equal(t, 383, pm.Capacity())
	assert.Equal(t, 96, pm.Len())
	assert.LessOrEqual(t, pm.LoadFactor(), 0.5)

	for i := range 96 {
		v, ok := pm.Get(fmt.Sprintf("token%d", i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestProbingMap_All(t *testing.T) {
	pm := New[int](16)
	want := map[string]int{"a": 1, "b": 2, "c": 3}

	for k, v := range want {
		pm.Insert(k, v)
	}

	assert.Equal(t, want, maps.Collect(pm.All()))

	// Early break
	n := 0
	for range pm.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestProbingMap_Stats(t *testing.T) {
	pm := New[int](5)

	for i := range 3 {
		pm.Insert(fmt.Sprint(i), i)
	}

	stats := pm.Stats()
	assert.Equal(t, 3, stats.Size)
	assert.Equal(t, 11, stats.Capacity)
	assert.Equal(t, 1, stats.Resizes)
	assert.GreaterOrEqual(t, stats.LongestProbe, 1)
}

func TestProbingMap_WithHashFunc(t *testing.T) {
	pm := New(16, WithHashFunc[int](XXHash))

	pm.Insert("abcdefgh", 1)
	pm.Insert("abcdefghXYZ", 2)

	v, ok := pm.Get("abcdefghXYZ")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	assert.Equal(t, 2, pm.Len())
}
