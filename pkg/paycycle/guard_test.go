package paycycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchGuard_StaleTokenDiscarded(t *testing.T) {
	var g FetchGuard

	first := g.Next()
	assert.True(t, g.Latest(first))

	second := g.Next()
	assert.False(t, g.Latest(first), "older token must be stale once a newer fetch starts")
	assert.True(t, g.Latest(second))

	third := g.Next()
	assert.False(t, g.Latest(second))
	assert.True(t, g.Latest(third))
}

func TestFetchGuard_Concurrent(t *testing.T) {
	var g FetchGuard
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Next()
		}()
	}
	wg.Wait()

	last := g.Next()
	assert.Equal(t, uint64(51), last)
	assert.True(t, g.Latest(last))
}
