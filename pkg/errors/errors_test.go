package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantType   ErrorType
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        NewValidationError("bad input"),
			wantType:   ErrorTypeValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found error",
			err:        NewNotFoundError("node"),
			wantType:   ErrorTypeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid path error",
			err:        NewInvalidPathError(""),
			wantType:   ErrorTypeInvalidPath,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "duplicate key error",
			err:        NewDuplicateKeyError("Site/about"),
			wantType:   ErrorTypeDuplicateKey,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestPredicates(t *testing.T) {
	dup := NewDuplicateKeyError("Site/index")
	assert.True(t, IsDuplicateKey(dup))
	assert.False(t, IsInvalidPath(dup))

	// Predicates must see through wrapping
	wrapped := fmt.Errorf("registering document: %w", dup)
	assert.True(t, IsDuplicateKey(wrapped))
	assert.True(t, IsAppError(wrapped))

	assert.False(t, IsDuplicateKey(errors.New("plain")))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	base := NewInvalidPathError("x")
	wrapped := Wrap(base, "phase 1")
	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInvalidPath, appErr.Type)
	assert.Contains(t, appErr.Message, "phase 1")

	plain := errors.New("disk gone")
	internal := Wrap(plain, "reading docs")
	require.True(t, IsType(internal, ErrorTypeInternal))
	assert.ErrorIs(t, internal, plain)
}
