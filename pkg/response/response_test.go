package response

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	errA := NewError(400, "message is required")
	errB := NewError(400, "message is required")
	errC := NewError(503, "message is required")

	assert.ErrorIs(t, fmt.Errorf("wrap: %w", errA), errB)
	assert.NotErrorIs(t, errA, errC)
	assert.NotErrorIs(t, errors.New("message is required"), errA)
}

func TestStatusCode(t *testing.T) {
	code, ok := StatusCode(fmt.Errorf("wrap: %w", NewError(404, "missing")))
	assert.True(t, ok)
	assert.Equal(t, 404, code)

	_, ok = StatusCode(errors.New("plain"))
	assert.False(t, ok)
}
