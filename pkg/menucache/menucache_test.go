package menucache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheLifecycle(t *testing.T) {
	c := New[[]string]()

	_, ok := c.Get()
	assert.False(t, ok, "empty cache must miss")

	c.Set([]string{"starters", "mains"})
	got, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, []string{"starters", "mains"}, got)

	c.Invalidate()
	_, ok = c.Get()
	assert.False(t, ok, "invalidated cache must miss")
}
