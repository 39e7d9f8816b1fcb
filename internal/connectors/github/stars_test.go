package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

// newTestClient points a Client at a local test server.
func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	ghc := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	ghc.BaseURL = base

	return newClientWithGH(ghc)
}

// starredPage renders n starred-repository records with sequential IDs
// starting at offset.
func starredPage(offset, n int) string {
	entries := make([]string, n)
	for i := 0; i < n; i++ {
		id := offset + i
		entries[i] = fmt.Sprintf(
			`{"repo":{"id":%d,"full_name":"owner/repo-%04d","name":"repo-%04d","description":"desc %d","language":"Go","topics":["cli"],"stargazers_count":%d,"html_url":"https://github.com/owner/repo-%04d"}}`,
			id, id, id, id, id, id,
		)
	}
	return "[" + strings.Join(entries, ",") + "]"
}

func writeOKHeaders(w http.ResponseWriter) {
	w.Header().Set(HeaderRateLimit, "5000")
	w.Header().Set(HeaderRateRemaining, "4999")
	w.Header().Set(HeaderRateReset, strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
	w.Header().Set("Content-Type", "application/json")
}

func TestStarFetcher_ListStarred(t *testing.T) {
	t.Run("paginates until a short page and stops", func(t *testing.T) {
		// 250 items across pages of 100/100/50; no fourth page may be requested.
		var pagesServed []int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/users/octocat/starred", r.URL.Path)
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			pagesServed = append(pagesServed, page)

			writeOKHeaders(w)
			switch page {
			case 1, 2:
				fmt.Fprint(w, starredPage((page-1)*100, 100))
			case 3:
				fmt.Fprint(w, starredPage(200, 50))
			default:
				t.Errorf("unexpected page %d requested", page)
				fmt.Fprint(w, "[]")
			}
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv), WithPageDelay(0))
		result, err := fetcher.ListStarred(context.Background(), "octocat")

		require.NoError(t, err)
		assert.True(t, result.Complete)
		assert.Len(t, result.Repos, 250)
		assert.Equal(t, []int{1, 2, 3}, pagesServed)
		assert.Equal(t, "owner/repo-0000", result.Repos[0].FullName)
		assert.Equal(t, "owner/repo-0249", result.Repos[249].FullName)
	})

	t.Run("converts repository fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			writeOKHeaders(w)
			fmt.Fprint(w, starredPage(7, 1))
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv), WithPageDelay(0))
		result, err := fetcher.ListStarred(context.Background(), "octocat")

		require.NoError(t, err)
		require.Len(t, result.Repos, 1)
		repo := result.Repos[0]
		assert.Equal(t, "owner/repo-0007", repo.FullName)
		assert.Equal(t, "repo-0007", repo.Name)
		assert.Equal(t, "desc 7", repo.Description)
		assert.Equal(t, "Go", repo.Language)
		assert.Equal(t, []string{"cli"}, repo.Topics)
		assert.Equal(t, 7, repo.Stars)
		assert.Equal(t, "https://github.com/owner/repo-0007", repo.URL)
	})

	t.Run("waits for the reset time on a rate-limit response and retries the same page", func(t *testing.T) {
		var calls int
		reset := time.Now().Add(time.Second)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.Header().Set(HeaderRateLimit, "5000")
				w.Header().Set(HeaderRateRemaining, "0")
				w.Header().Set(HeaderRateReset, strconv.FormatInt(reset.Unix(), 10))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				fmt.Fprint(w, `{"message":"API rate limit exceeded"}`)
				return
			}
			assert.Equal(t, "1", r.URL.Query().Get("page"), "retry must not skip the page")
			writeOKHeaders(w)
			fmt.Fprint(w, starredPage(0, 2))
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv), WithPageDelay(0))
		start := time.Now()
		result, err := fetcher.ListStarred(context.Background(), "octocat")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.True(t, result.Complete)
		assert.Len(t, result.Repos, 2)
		assert.Equal(t, 2, calls)
		// Reset is ~1s out (truncated to whole seconds by the header) and
		// the fetcher adds its safety margin on top.
		assert.GreaterOrEqual(t, elapsed, 1500*time.Millisecond, "must wait for the reset time")
	})

	t.Run("unknown user is fatal but keeps accumulated pages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page == 1 {
				writeOKHeaders(w)
				fmt.Fprint(w, starredPage(0, 100))
				return
			}
			writeOKHeaders(w)
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv), WithPageDelay(0))
		result, err := fetcher.ListStarred(context.Background(), "ghost")

		require.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.False(t, result.Complete)
		assert.Len(t, result.Repos, 100, "accumulated results are preserved")
	})

	t.Run("transient failures are retried then succeed", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message":"boom"}`)
				return
			}
			writeOKHeaders(w)
			fmt.Fprint(w, starredPage(0, 1))
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv), WithPageDelay(0), WithRetryDelay(0))
		result, err := fetcher.ListStarred(context.Background(), "octocat")

		require.NoError(t, err)
		assert.True(t, result.Complete)
		assert.Equal(t, 2, calls)
	})

	t.Run("abandons pagination after the retry bound, keeping earlier pages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			if page == 1 {
				writeOKHeaders(w)
				fmt.Fprint(w, starredPage(0, 100))
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"message":"boom"}`)
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv),
			WithPageDelay(0), WithRetryDelay(0), WithMaxRetries(2))
		result, err := fetcher.ListStarred(context.Background(), "octocat")

		require.ErrorIs(t, err, ErrRetriesExhausted)
		assert.False(t, result.Complete)
		assert.Len(t, result.Repos, 100)
	})

	t.Run("rejects an empty user", func(t *testing.T) {
		fetcher := NewStarFetcher(newClientWithGH(gh.NewClient(nil)))

		_, err := fetcher.ListStarred(context.Background(), "")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStarFetcher_Validate(t *testing.T) {
	t.Run("passes with valid credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/user", r.URL.Path)
			writeOKHeaders(w)
			fmt.Fprint(w, `{"login":"octocat"}`)
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv))

		assert.NoError(t, fetcher.Validate(context.Background()))
	})

	t.Run("maps 401 to an auth error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"message":"Bad credentials"}`)
		}))
		defer srv.Close()

		fetcher := NewStarFetcher(newTestClient(t, srv))

		assert.ErrorIs(t, fetcher.Validate(context.Background()), domain.ErrAuthRequired)
	})
}
