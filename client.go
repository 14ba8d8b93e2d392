package httpext

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Request is the request-construction record executed by Client.Do. A zero
// Timeout means the client-level timeout applies.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    io.Reader
	Timeout time.Duration
}

// Client wraps an *http.Client with the plumbing the resolvers expect:
// request ids, optional bearer auth, optional debug logging. Transport
// behavior (connections, redirects, TLS) stays entirely with net/http.
type Client struct {
	http      *http.Client
	userAgent string
}

// New constructs a Client. The underlying http.Client defaults to a 30s
// timeout; adjust via options.
func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// Do executes the request and returns the raw transport outcome for a
// resolver. The only I/O in this package happens here, inside net/http.
func (c *Client) Do(ctx context.Context, req Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, req.Body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if httpReq.Header.Get("X-Request-Id") == "" {
		httpReq.Header.Set("X-Request-Id", uuid.NewString())
	}
	if c.userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	hc := c.http
	if req.Timeout > 0 {
		// Shallow copy so the per-request deadline covers the body read
		// without mutating the shared client.
		clone := *c.http
		clone.Timeout = req.Timeout
		hc = &clone
	}
	return hc.Do(httpReq)
}

// DoJSON executes req on c and resolves the outcome with ResolveJSON.
// Free function rather than a method because methods cannot have type
// parameters.
func DoJSON[T any](ctx context.Context, c *Client, req Request) (*ResolvedData[T], error) {
	data, err := ResolveJSON[T](c.Do(ctx, req))
	observeOutcome(err)
	return data, err
}

// DoRaw executes req on c and resolves the outcome with the pass-through
// resolver, returning the body as B.
func DoRaw[B RawBody](ctx context.Context, c *Client, req Request) (*ResolvedData[B], error) {
	data, err := Resolve[B](c.Do(ctx, req))
	observeOutcome(err)
	return data, err
}

// bearerTransport wraps an http.RoundTripper to add an Authorization header
// to every request.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}
