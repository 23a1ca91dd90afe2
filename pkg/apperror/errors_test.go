package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", NotFound("client not found"), KindNotFound},
		{"wrapped conflict", fmt.Errorf("register: %w", Conflict("Email already registered")), KindConflict},
		{"plain error", errors.New("boom"), KindStore},
		{"store", Store("failed to list", errors.New("timeout")), KindStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindValidation))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindConflict))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(KindNotFound))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(KindUnauthorized))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(KindForbidden))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindStore))
}

func TestError_UnwrapAndIs(t *testing.T) {
	cause := errors.New("connection refused")
	err := Store("failed to delete product", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("wrap: %w", NotFound("x")), &Error{Kind: KindNotFound})
	assert.NotErrorIs(t, NotFound("x"), &Error{Kind: KindConflict})
	assert.Equal(t, "failed to delete product: connection refused", err.Error())
}
