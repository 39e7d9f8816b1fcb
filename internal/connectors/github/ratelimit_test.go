package github

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	t.Run("parses the rate limit headers", func(t *testing.T) {
		r := NewRateLimiter()
		reset := time.Now().Add(30 * time.Minute).Truncate(time.Second)

		resp := &http.Response{Header: http.Header{}}
		resp.Header.Set(HeaderRateLimit, "5000")
		resp.Header.Set(HeaderRateRemaining, "123")
		resp.Header.Set(HeaderRateReset, strconv.FormatInt(reset.Unix(), 10))

		r.UpdateFromResponse(resp)

		assert.Equal(t, 5000, r.Limit())
		assert.Equal(t, 123, r.Remaining())
		assert.Equal(t, reset.Unix(), r.ResetTime().Unix())
	})

	t.Run("ignores missing or malformed headers", func(t *testing.T) {
		r := NewRateLimiter()

		resp := &http.Response{Header: http.Header{}}
		resp.Header.Set(HeaderRateRemaining, "not-a-number")
		r.UpdateFromResponse(resp)
		r.UpdateFromResponse(nil)

		assert.Equal(t, GitHubRateLimit, r.Remaining())
	})
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("first request passes without blocking on quota", func(t *testing.T) {
		r := NewRateLimiter()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		require.NoError(t, r.Wait(ctx))
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		r := NewRateLimiter()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.Error(t, r.Wait(ctx))
	})
}
