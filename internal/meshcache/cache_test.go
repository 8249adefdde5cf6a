package meshcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/frustum/pkg/frustum"
)

func opts(slices int) frustum.Options {
	return frustum.Options{Height: 2, TopRadius: 1, BottomRadius: 1, Slices: slices}
}

func TestGetMemoizes(t *testing.T) {
	c := New(4)

	a, err := c.Get(opts(8))
	require.NoError(t, err)
	b, err := c.Get(opts(8))
	require.NoError(t, err)

	assert.Same(t, a, b)
	hits, misses := c.Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestGetNormalizesDefaults(t *testing.T) {
	c := New(4)

	a, err := c.Get(opts(0))
	require.NoError(t, err)
	explicit := opts(frustum.DefaultSlices)
	explicit.VertexFormat = frustum.DefaultVertexFormat
	b, err := c.Get(explicit)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Len())
}

func TestGetInvalid(t *testing.T) {
	c := New(4)
	_, err := c.Get(opts(2))
	assert.ErrorIs(t, err, frustum.ErrTooFewSlices)
	assert.Equal(t, 0, c.Len())
}

func TestEvictsOldest(t *testing.T) {
	c := New(2)

	first, err := c.Get(opts(3))
	require.NoError(t, err)
	_, err = c.Get(opts(4))
	require.NoError(t, err)

	// Touch 3 so that 4 becomes the oldest.
	_, err = c.Get(opts(3))
	require.NoError(t, err)
	_, err = c.Get(opts(5))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	again, err := c.Get(opts(3))
	require.NoError(t, err)
	assert.Same(t, first, again)

	_, misses := c.Stats()
	_, err = c.Get(opts(4))
	require.NoError(t, err)
	_, missesAfter := c.Stats()
	assert.Equal(t, misses+1, missesAfter, "evicted entry should rebuild")
}

func TestClear(t *testing.T) {
	c := New(0)
	_, err := c.Get(opts(6))
	require.NoError(t, err)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	hits, misses := c.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestConcurrentGet(t *testing.T) {
	c := New(8)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := c.Get(opts(3 + i%4))
			assert.NoError(t, err)
			assert.Equal(t, 4*(3+i%4), m.VertexCount())
		}()
	}
	wg.Wait()
	assert.Equal(t, 4, c.Len())
}
