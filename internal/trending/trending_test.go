package trending

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsService_Fetch(t *testing.T) {
	s := NewNewsService(0)

	articles, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 7)

	first := articles[0]
	assert.Equal(t, "1", first.ID)
	assert.NotEmpty(t, first.Title)
	assert.NotEmpty(t, first.URL)
	assert.NotEmpty(t, first.Source.Name)
}

func TestVideoService_Fetch(t *testing.T) {
	s := NewVideoService(0)

	videos, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 5)

	for _, v := range videos {
		assert.NotEmpty(t, v.ID)
		assert.NotEmpty(t, v.URL)
		assert.NotEmpty(t, v.Username)
	}
}

func TestFetch_ReturnsCopies(t *testing.T) {
	s := NewNewsService(0)

	first, err := s.Fetch(context.Background())
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestFetch_CanceledContext(t *testing.T) {
	s := NewNewsService(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetch_CanceledContextZeroLatency(t *testing.T) {
	s := NewVideoService(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
