package httpext

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "BadUrl", KindBadURL.String())
	assert.Equal(t, "Timeout", KindTimeout.String())
	assert.Equal(t, "NetworkError", KindNetwork.String())
	assert.Equal(t, "BadStatus", KindBadStatus.String())
	assert.Equal(t, "BadJson", KindBadJSON.String())
	assert.Equal(t, "Unknown(99)", Kind(99).String())
}

func TestErrorRendering(t *testing.T) {
	t.Parallel()
	meta := Metadata{StatusCode: 404, StatusText: "Not Found", Header: http.Header{}}

	assert.Equal(t, "BadUrl ht!tp://x", BadURL[string]("ht!tp://x").Error())
	assert.Equal(t, "Timeout", Timeout[string](context.DeadlineExceeded).Error())
	assert.Equal(t, "NetworkError", NetworkError[string](errors.New("connection refused")).Error())
	assert.Equal(t,
		`BadStatus 404 Not Found: {"error":"nope"}`,
		BadStatus(meta, `{"error":"nope"}`).Error(),
	)

	var target struct{}
	decodeErr := json.Unmarshal([]byte("{"), &target)
	require.Error(t, decodeErr)
	okMeta := Metadata{StatusCode: 200, StatusText: "OK"}
	assert.Equal(t,
		fmt.Sprintf("BadJson 200 OK: { %v", decodeErr),
		BadJSON(okMeta, "{", decodeErr).Error(),
	)
}

func TestErrorRendering_Stable(t *testing.T) {
	t.Parallel()
	meta := Metadata{StatusCode: 503, StatusText: "Service Unavailable"}
	e := BadStatus(meta, "try later")
	first := e.Error()
	assert.Equal(t, first, e.Error())
	assert.Contains(t, first, "503")
	assert.Contains(t, first, "Service Unavailable")
}

func TestErrorRendering_ByteBody(t *testing.T) {
	t.Parallel()
	meta := Metadata{StatusCode: 500, StatusText: "Internal Server Error"}
	e := BadStatus(meta, []byte("oops"))
	assert.Equal(t, "BadStatus 500 Internal Server Error: oops", e.Error())
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("dns failure")
	assert.ErrorIs(t, NetworkError[string](cause), cause)
	assert.ErrorIs(t, Timeout[string](context.DeadlineExceeded), context.DeadlineExceeded)

	var target struct{}
	decodeErr := json.Unmarshal([]byte("{"), &target)
	var syn *json.SyntaxError
	assert.ErrorAs(t, BadJSON(Metadata{}, "{", decodeErr), &syn)

	// No-cause kinds unwrap to nil.
	assert.Nil(t, errors.Unwrap(BadURL[string]("u")))
	assert.Nil(t, errors.Unwrap(BadStatus(Metadata{}, "body")))
}
