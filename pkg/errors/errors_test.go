package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetadataFor(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeAdmissionDenied, http.StatusBadRequest},
		{CodeIdempotency, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			require.Equal(t, tc.status, MetadataFor(tc.code).HTTPStatus)
		})
	}

	t.Run("unknown code falls back to internal", func(t *testing.T) {
		require.Equal(t, http.StatusInternalServerError, MetadataFor(Code("NOPE")).HTTPStatus)
	})
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("broken pipe")
	err := Wrap(CodeDependency, cause, "write rental")

	require.ErrorIs(t, err, cause)
	require.Equal(t, CodeDependency, err.Code())
	require.Equal(t, "write rental", err.Message())
}

func TestAsUnwrapsNestedErrors(t *testing.T) {
	inner := New(CodeAdmissionDenied, "stock exhausted").WithDetails(map[string]any{"openRentals": 3})
	wrapped := fmt.Errorf("create rental: %w", inner)

	typed := As(wrapped)
	require.NotNil(t, typed)
	require.Equal(t, CodeAdmissionDenied, typed.Code())
	require.NotNil(t, typed.Details())

	require.Nil(t, As(stdErrors.New("plain")))
	require.Nil(t, As(nil))
}
