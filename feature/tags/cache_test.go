package tags

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls atomic.Int32
	tags  []string
	err   error
	gate  chan struct{}
}

func (s *countingSource) Tags(ctx context.Context) ([]string, error) {
	s.calls.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	return s.tags, s.err
}

func TestCache_HitAndExpiry(t *testing.T) {
	src := &countingSource{tags: []string{"go", "nature"}}
	c := NewCache(src, time.Minute, 8)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	got, err := c.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "nature"}, got)

	_, err = c.Tags(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, src.calls.Load())

	now = now.Add(time.Minute)
	_, err = c.Tags(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestCache_Invalidate(t *testing.T) {
	src := &countingSource{tags: []string{"go"}}
	c := NewCache(src, time.Hour, 0)

	_, err := c.Tags(context.Background())
	require.NoError(t, err)
	c.Invalidate()
	_, err = c.Tags(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("boom")}
	c := NewCache(src, time.Hour, 8)

	_, err := c.Tags(context.Background())
	require.Error(t, err)

	src.err = nil
	src.tags = []string{"go"}
	got, err := c.Tags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, got)
}

func TestCache_ConcurrentMissesShareOneLoad(t *testing.T) {
	src := &countingSource{tags: []string{"go"}, gate: make(chan struct{})}
	c := NewCache(src, time.Hour, 8)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Tags(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, []string{"go"}, got)
		}()
	}

	assert.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(src.gate)
	wg.Wait()
	assert.EqualValues(t, 1, src.calls.Load())
}
