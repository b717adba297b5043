package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	s := NewLocalStorage("")
	ctx := context.Background()

	url, err := s.Upload(ctx, strings.NewReader("bytes"), "forum", "afis.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "local://media/forum/"))
	assert.True(t, strings.HasSuffix(url, "afis.png"))
	assert.True(t, s.Has(url))

	signed, err := s.SignedURL(ctx, url, time.Hour)
	require.NoError(t, err)
	assert.Contains(t, signed, "expires=3600")

	require.NoError(t, s.Delete(ctx, url))
	assert.False(t, s.Has(url))
}

func TestLocalStorageURLsAreUnique(t *testing.T) {
	s := NewLocalStorage("")
	ctx := context.Background()

	first, err := s.Upload(ctx, strings.NewReader("a"), "forum", "same.png")
	require.NoError(t, err)
	second, err := s.Upload(ctx, strings.NewReader("b"), "forum", "same.png")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
