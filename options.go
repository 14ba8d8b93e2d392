package httpext

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied in order, so transport-wrapping options compose: a
// debug transport installed after a bearer transport logs the request as it
// leaves the bearer wrapper. Options must be deterministic and side-effect
// free.
type Option func(*Client) error

// WithHTTPClient replaces the underlying http.Client entirely. Use this to
// supply a custom transport, redirect policy or cookie jar.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request deadlines (Request.Timeout or a context deadline) where
// possible; this timeout is a coarse safety net that bounds the total time
// spent on a single HTTP request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithBearerToken wraps the client's transport so each outgoing request
// carries "Authorization: Bearer <token>".
func WithBearerToken(token string) Option {
	return func(c *Client) error {
		if token == "" {
			return fmt.Errorf("bearer token must not be empty")
		}
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.http.Transport = &bearerTransport{base: base, token: token}
		return nil
	}
}

// WithUserAgent sets the User-Agent header on requests that do not set
// their own.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged when enabled is true.
//
// Do not enable this option in production environments: dumps include
// headers and full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
