package presence

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRegistry_MultipleConnections(t *testing.T) {
	r := NewMemoryRegistry()

	r.Register("u1", "c1")
	r.Register("u1", "c2")
	assert.True(t, r.IsOnline("u1"))
	assert.ElementsMatch(t, []string{"c1", "c2"}, r.Connections("u1"))
	assert.Equal(t, 1, r.OnlineCount())

	r.Unregister("c1")
	assert.True(t, r.IsOnline("u1"), "still online while one connection remains")

	r.Unregister("c2")
	assert.False(t, r.IsOnline("u1"))
	assert.Equal(t, 0, r.OnlineCount())
	assert.Empty(t, r.Connections("u1"))
}

func TestMemoryRegistry_UnknownAndEmpty(t *testing.T) {
	r := NewMemoryRegistry()

	r.Unregister("missing")
	r.Register("", "c1")
	r.Register("u1", "")

	assert.False(t, r.IsOnline("u1"))
	assert.Equal(t, 0, r.OnlineCount())
}

func TestMemoryRegistry_ReRegisterMovesConnection(t *testing.T) {
	r := NewMemoryRegistry()

	r.Register("u1", "c1")
	r.Register("u2", "c1")

	assert.False(t, r.IsOnline("u1"))
	assert.True(t, r.IsOnline("u2"))

	r.Unregister("c1")
	assert.False(t, r.IsOnline("u2"))
}

func TestMemoryRegistry_Concurrent(t *testing.T) {
	r := NewMemoryRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			conn := fmt.Sprintf("c%d", i)
			r.Register("u1", conn)
			_ = r.IsOnline("u1")
			r.Unregister(conn)
		}(i)
	}
	wg.Wait()

	assert.False(t, r.IsOnline("u1"))
}
