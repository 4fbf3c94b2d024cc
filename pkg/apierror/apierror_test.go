package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindConstructors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    *APIError
		code   string
		status int
	}{
		{Validation("bad"), CodeValidation, http.StatusBadRequest},
		{Conflict("dup"), CodeConflict, http.StatusConflict},
		{NotFound("gone"), CodeNotFound, http.StatusNotFound},
		{Unauthorized("who"), CodeUnauthorized, http.StatusUnauthorized},
		{Internal("boom"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestWrapKeepsCauseButNotOriginal(t *testing.T) {
	t.Parallel()

	base := Internal("upload failed")
	cause := errors.New("connection reset")
	wrapped := base.Wrap(cause)

	require.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, base, cause)
	assert.Contains(t, wrapped.Error(), "connection reset")
	assert.Equal(t, "INTERNAL_ERROR: upload failed", base.Error())
}

func TestWithErrorsDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	base := Validation("invalid input")
	withFields := base.WithErrors(FieldError{Field: "email", Message: "is required"})

	assert.Empty(t, base.Errors)
	require.Len(t, withFields.Errors, 1)
	assert.Equal(t, "email", withFields.Errors[0].Field)
}

func TestAsThroughWrappedChain(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("find user: %w", NotFound("user not found"))

	apiErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.HTTPStatus)
	assert.True(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeNotFound))
}
