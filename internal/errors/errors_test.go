package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    int
	}{
		{TypeValidation, http.StatusBadRequest},
		{TypeUnauthorized, http.StatusUnauthorized},
		{TypeForbidden, http.StatusForbidden},
		{TypeNotFound, http.StatusNotFound},
		{TypeExternal, http.StatusBadGateway},
		{TypeInternal, http.StatusInternalServerError},
		{ErrorType("bogus"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := &Error{Type: tt.errType, Message: "m"}
		assert.Equal(t, tt.want, err.HTTPStatus(), "type %s", tt.errType)
	}
}

func TestError_MessageFormat(t *testing.T) {
	err := ValidationError("bad input")
	assert.Equal(t, "validation: bad input", err.Error())

	cause := errors.New("boom")
	err = InternalError("db failed", cause)
	assert.Equal(t, "internal: db failed: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAsStructuredError(t *testing.T) {
	structured := UnauthorizedError("no token")
	assert.Same(t, structured, AsStructuredError(structured))

	wrapped := fmt.Errorf("outer: %w", structured)
	assert.Same(t, structured, AsStructuredError(wrapped))

	plain := errors.New("plain")
	got := AsStructuredError(plain)
	assert.Equal(t, TypeInternal, got.Type)
	assert.ErrorIs(t, got, plain)

	assert.Nil(t, AsStructuredError(nil))
}

func TestToResponse(t *testing.T) {
	err := ForbiddenError("signature mismatch").WithField("field", "hash")
	resp := err.ToResponse()

	assert.False(t, resp.OK)
	assert.Equal(t, "signature mismatch", resp.Error)
	assert.Equal(t, TypeForbidden, resp.Type)
	assert.Equal(t, "hash", resp.Context["field"])
}
