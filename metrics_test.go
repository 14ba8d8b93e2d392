package httpext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ok", outcomeLabel(nil))
	assert.Equal(t, "BadStatus", outcomeLabel(BadStatus(Metadata{StatusCode: 404}, "nope")))
	assert.Equal(t, "BadStatus", outcomeLabel(BadStatus(Metadata{StatusCode: 404}, []byte("nope"))))
	assert.Equal(t, "Timeout", outcomeLabel(Timeout[string](nil)))
	assert.Equal(t, "unknown", outcomeLabel(errors.New("not a resolver error")))
}
