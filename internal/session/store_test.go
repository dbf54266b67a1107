package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	Name string `json:"name"`
	Step string `json:"step"`
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var got draft
	found, err := s.Load(ctx, "wizard:a", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save(ctx, "wizard:a", draft{Name: "Asha", Step: "contact"}, time.Minute))

	found, err = s.Load(ctx, "wizard:a", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, draft{Name: "Asha", Step: "contact"}, got)

	require.NoError(t, s.Delete(ctx, "wizard:a"))
	found, err = s.Load(ctx, "wizard:a", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "a", draft{Name: "A"}, time.Minute))
	require.NoError(t, s.Save(ctx, "b", draft{Name: "B"}, time.Hour))
	require.NoError(t, s.Save(ctx, "c", draft{Name: "C"}, 0))

	now = now.Add(2 * time.Minute)

	var got draft
	found, err := s.Load(ctx, "a", &got)
	require.NoError(t, err)
	assert.False(t, found)

	s.Sweep()
	assert.Len(t, s.entries, 2)

	found, err = s.Load(ctx, "c", &got)
	require.NoError(t, err)
	assert.True(t, found, "zero ttl never expires")
}

func TestMemoryStoreJanitorStops(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		s.Janitor(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestMemoryStoreDecodeError(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Save(ctx, "k", "plain string", time.Minute))

	var got draft
	_, err := s.Load(ctx, "k", &got)
	assert.Error(t, err)
}
