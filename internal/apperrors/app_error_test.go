package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, InvalidRequestErrorDefault().Code)
	assert.Equal(t, http.StatusUnauthorized, UnauthorizedError().Code)
	assert.Equal(t, http.StatusNotFound, NotFoundError().Code)
	assert.Equal(t, http.StatusConflict, ConflictError("taken").Code)
	assert.Equal(t, http.StatusInternalServerError, SystemErrorDefault().Code)
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := &AppError{Code: http.StatusInternalServerError, Message: "error.system", Cause: cause}

	assert.Equal(t, "error.system", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestErrorsAs(t *testing.T) {
	var target *AppError
	wrapped := fmt.Errorf("handler: %w", ConflictError("error.shortcode_taken"))
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, http.StatusConflict, target.Code)
}
