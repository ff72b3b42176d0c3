package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := NewNotFoundError("startup")
	assert.Equal(t, "NOT_FOUND: startup not found", err.Error())

	cause := fmt.Errorf("connection reset")
	wrapped := NewStoreError("transact", cause)
	assert.Contains(t, wrapped.Error(), "caused by: connection reset")
	assert.Equal(t, cause, wrapped.Unwrap())
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError("bad").HTTPStatus)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").HTTPStatus)
	assert.Equal(t, http.StatusConflict, NewConditionalWriteError("lost", nil).HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, NewMalformedKeyError("garbage").HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, NewUnauthorizedError("").HTTPStatus)
	assert.Equal(t, http.StatusBadGateway, NewExternalError("eventbridge", nil).HTTPStatus)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("x")))
	assert.True(t, IsValidation(NewValidationError("x")))
	assert.True(t, IsMalformedKey(NewMalformedKeyError("x")))
	assert.True(t, IsConditionalWrite(NewConditionalWriteError("x", nil)))

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("startup"))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))

	plain := fmt.Errorf("plain")
	assert.False(t, IsAppError(plain))
	assert.Nil(t, GetAppError(plain))
}

func TestWrapPreservesAppErrorType(t *testing.T) {
	err := Wrap(NewValidationError("name required"), "createStartup")
	require.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "createStartup: name required")
}

func TestWrapPlainErrorBecomesInternal(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), "publish")
	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.EqualError(t, appErr.Unwrap(), "boom")

	assert.NoError(t, Wrap(nil, "noop"))
}

func TestWithDetails(t *testing.T) {
	err := NewValidationError("invalid input").WithDetails(map[string]interface{}{"field": "email"})
	assert.Equal(t, "email", err.Details["field"])
}
