// Package github implements the starred-repository lister on top of the
// GitHub REST API.
//
// # Architecture
//
// The package comprises the following components:
//
//   - Client: handles GitHub API communication with rate limiting
//   - StarFetcher: paginates through a user's stars with retry/backoff,
//     implementing the [driven.StarLister] port
//   - RateLimiter: dual-strategy throttling (proactive + reactive)
//
// # Authentication
//
// A personal access token is required. Authenticated requests are allowed
// 5,000 API calls per hour; unauthenticated requests are limited to 60 per
// hour and are not supported.
//
// # Rate Limiting
//
// The fetcher implements a dual-strategy rate limiting approach:
//
//  1. Proactive throttling: a token bucket limits requests to roughly one
//     per second, and a fixed delay separates successful page fetches,
//     staying well under the hourly limit even when the API never pushes
//     back.
//
//  2. Reactive handling: X-RateLimit-Remaining and X-RateLimit-Reset
//     headers are tracked on every response. A rate-limited response makes
//     the fetcher sleep until the advertised reset time plus a safety
//     margin, then retry the same page without advancing.
//
// # Error Handling
//
// The fetcher distinguishes between recoverable and fatal errors:
//
//   - Rate limit responses: retried in place after waiting for the reset
//   - Transient errors: retried with a fixed delay, up to a bounded count;
//     beyond the bound pagination stops and accumulated results are kept
//   - Unknown user (404): fatal for the fetch, accumulated results are
//     kept and the result is flagged incomplete
//
// Partial results are always preserved; [domain.FetchResult.Complete]
// distinguishes them from a full listing.
package github
