package httpext

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Metadata is the response envelope kept alongside both success and failure
// results, so headers such as rate limits stay reachable either way.
type Metadata struct {
	StatusCode int
	StatusText string
	Header     http.Header
}

// NewMetadata extracts Metadata from a received response.
func NewMetadata(resp *http.Response) Metadata {
	return Metadata{
		StatusCode: resp.StatusCode,
		StatusText: statusText(resp),
		Header:     resp.Header,
	}
}

// statusText derives the reason phrase: resp.Status is "404 Not Found", so
// strip the numeric prefix and fall back to the standard text when the
// server sent none.
func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimPrefix(text, " ")
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}

// ResolvedData pairs a resolved value with the response metadata.
type ResolvedData[T any] struct {
	Metadata Metadata
	Data     T
}

// ResolveJSON converts the outcome of an http.Client.Do call into decoded
// data or a classified *Error[string].
//
// Non-success status bodies are never decoded; they come back as
// KindBadStatus with the body preserved as received. A success-status body
// that fails to decode comes back as KindBadJSON, again with the raw body
// byte-identical to what was received. Every (resp, err) pair maps to
// exactly one result.
func ResolveJSON[T any](resp *http.Response, err error) (*ResolvedData[T], error) {
	raw, rerr := resolve[string](resp, err)
	if rerr != nil {
		return nil, rerr
	}
	var data T
	if decodeErr := json.Unmarshal([]byte(raw.Data), &data); decodeErr != nil {
		return nil, BadJSON(raw.Metadata, raw.Data, decodeErr)
	}
	return &ResolvedData[T]{Metadata: raw.Metadata, Data: data}, nil
}

// Resolve is the pass-through resolver: the same outcome classification as
// ResolveJSON, but a success-status body is returned as-is in the requested
// representation. Use it when the body is not structured or decoding is
// deferred to the caller. Errors are *Error[B].
func Resolve[B RawBody](resp *http.Response, err error) (*ResolvedData[B], error) {
	data, rerr := resolve[B](resp, err)
	if rerr != nil {
		return nil, rerr
	}
	return data, nil
}

// resolve classifies the transport outcome shared by both resolvers and
// reads the body. It returns a value only for a fully received
// success-status response.
func resolve[B RawBody](resp *http.Response, err error) (*ResolvedData[B], *Error[B]) {
	if err != nil {
		return nil, classifyTransportError[B](err)
	}
	if resp == nil {
		return nil, NetworkError[B](errors.New("no response"))
	}
	defer func() { _ = resp.Body.Close() }()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		// Status line arrived but the body did not; the response was never
		// fully received, so no metadata-carrying kind applies.
		return nil, NetworkError[B](readErr)
	}
	meta := NewMetadata(resp)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, BadStatus(meta, B(raw))
	}
	return &ResolvedData[B]{Metadata: meta, Data: B(raw)}, nil
}

// classifyTransportError maps an http.Client.Do error to the matching
// no-response-received kind.
func classifyTransportError[B RawBody](err error) *Error[B] {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Op == "parse" {
		// url.Parse failures surface with Op "parse", both from
		// http.NewRequest and from a client following a malformed redirect.
		return BadURL[B](ue.URL)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout[B](err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return Timeout[B](err)
	}
	return NetworkError[B](err)
}
