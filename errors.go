// Package httpext extends net/http response handling so that diagnostic
// context (status line, headers, raw body) is never discarded on failure.
// Resolvers convert the outcome of an http.Client.Do call into either typed
// data with response metadata attached, or a classified Error that carries
// everything the transport exposed.
package httpext

import (
	"fmt"
)

// RawBody constrains the body representation carried by errors and the
// pass-through resolver: text or bytes.
type RawBody interface {
	~string | ~[]byte
}

// Kind discriminates the mutually exclusive ways an HTTP request attempt
// concludes.
type Kind int

const (
	// KindBadURL means the request URL was malformed; no network attempt was made.
	KindBadURL Kind = iota
	// KindTimeout means no response arrived within the configured deadline.
	KindTimeout
	// KindNetwork means the transport failed (DNS, connection refused, ...)
	// before a response was received.
	KindNetwork
	// KindBadStatus means a response arrived with a non-success status code.
	KindBadStatus
	// KindBadJSON means a success-status response arrived but its body did not
	// decode into the expected type.
	KindBadJSON
)

// String returns the canonical name of the outcome kind.
func (k Kind) String() string {
	switch k {
	case KindBadURL:
		return "BadUrl"
	case KindTimeout:
		return "Timeout"
	case KindNetwork:
		return "NetworkError"
	case KindBadStatus:
		return "BadStatus"
	case KindBadJSON:
		return "BadJson"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Error is a classified HTTP failure. Kinds that imply a response was
// actually received (KindBadStatus, KindBadJSON) always carry the response
// Metadata and the raw, undecoded Body; the caller can re-derive any detail
// the transport exposed.
type Error[B RawBody] struct {
	Kind     Kind
	URL      string   // set for KindBadURL
	Metadata Metadata // set for KindBadStatus and KindBadJSON
	Body     B        // raw body, set for KindBadStatus and KindBadJSON

	cause error // transport or decode error, reachable via Unwrap
}

// BadURL reports a malformed request URL.
func BadURL[B RawBody](url string) *Error[B] {
	return &Error[B]{Kind: KindBadURL, URL: url}
}

// Timeout reports that no response arrived within the deadline.
func Timeout[B RawBody](cause error) *Error[B] {
	return &Error[B]{Kind: KindTimeout, cause: cause}
}

// NetworkError reports a transport failure with no response received.
func NetworkError[B RawBody](cause error) *Error[B] {
	return &Error[B]{Kind: KindNetwork, cause: cause}
}

// BadStatus reports a response rejected on its status code. The body is
// stored as received, never decoded.
func BadStatus[B RawBody](meta Metadata, body B) *Error[B] {
	return &Error[B]{Kind: KindBadStatus, Metadata: meta, Body: body}
}

// BadJSON reports a success-status response whose body failed to decode.
// decodeErr keeps the structured decode failure (*json.SyntaxError,
// *json.UnmarshalTypeError) so callers can render it their own way.
func BadJSON[B RawBody](meta Metadata, body B, decodeErr error) *Error[B] {
	return &Error[B]{Kind: KindBadJSON, Metadata: meta, Body: body, cause: decodeErr}
}

// Error renders a deterministic single-line summary for logs and tests.
// The body is included verbatim, with no truncation or escaping.
func (e *Error[B]) Error() string {
	switch e.Kind {
	case KindBadURL:
		return "BadUrl " + e.URL
	case KindTimeout:
		return "Timeout"
	case KindNetwork:
		return "NetworkError"
	case KindBadStatus:
		return fmt.Sprintf("BadStatus %d %s: %s", e.Metadata.StatusCode, e.Metadata.StatusText, string(e.Body))
	case KindBadJSON:
		return fmt.Sprintf("BadJson %d %s: %s %v", e.Metadata.StatusCode, e.Metadata.StatusText, string(e.Body), e.cause)
	default:
		return e.Kind.String()
	}
}

// Unwrap returns the underlying transport or decode error, if any, for
// errors.Is and errors.As compatibility.
func (e *Error[B]) Unwrap() error { return e.cause }
