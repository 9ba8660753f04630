package runtime

import (
	"room-bot/domain"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Observe_Once(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	roomID := domain.RoomID("r1")

	// Given no room is observed
	req.Empty(registry.Observed())
	req.False(registry.IsObserved(roomID))

	// When the room is observed twice
	first := registry.Observe(roomID)
	second := registry.Observe(roomID)

	// Then only the first call attaches observers
	req.True(first)
	req.False(second)
	req.True(registry.IsObserved(roomID))
	req.Equal([]domain.RoomID{roomID}, registry.Observed())
}

func TestRegistry_Observe_Concurrent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	roomID := domain.RoomID("r1")

	var wg sync.WaitGroup
	var mu sync.Mutex
	attached := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if registry.Observe(roomID) {
				mu.Lock()
				attached++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	req.Equal(1, attached)
}

func TestRegistry_Forget(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given two observed rooms
	registry.Observe("r2")
	registry.Observe("r1")

	// When one of them is forgotten
	registry.Forget("r2")

	// Then it can be observed again
	req.Equal([]domain.RoomID{"r1"}, registry.Observed())
	req.True(registry.Observe("r2"))
	req.Equal([]domain.RoomID{"r1", "r2"}, registry.Observed())
}
