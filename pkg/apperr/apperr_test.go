package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"clinic-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := apperr.New(apperr.KindConflict, "email is already registered")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.False(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("boom")))
}

func TestKindOfWrappedError(t *testing.T) {
	inner := apperr.New(apperr.KindNotFound, "user not found")
	wrapped := fmt.Errorf("lookup failed: %w", inner)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Wrap(apperr.KindInternal, "database unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "database unavailable: connection reset", err.Error())
}

func TestMessageHidesInternalDetails(t *testing.T) {
	assert.Equal(t, "internal server error", apperr.Message(errors.New("pq: relation missing")))
	assert.Equal(t, "user not found", apperr.Message(apperr.New(apperr.KindNotFound, "user not found")))
}
