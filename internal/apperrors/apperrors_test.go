package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_TableTest(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{
			name: "plain taxonomy error",
			err:  New(KindAuth, "token rejected"),
			want: KindAuth,
		},
		{
			name: "wrapped taxonomy error",
			err:  fmt.Errorf("handler: %w", Wrap(KindDatabase, "query failed", errors.New("conn reset"))),
			want: KindDatabase,
		},
		{
			name: "uncategorised error falls back to general",
			err:  errors.New("something odd"),
			want: KindGeneral,
		},
		{
			name: "validation constructor",
			err:  Validation("bad input", map[string]string{"field": "email"}),
			want: KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("no rows")
	err := Wrap(KindNotFound, "product lookup", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "no rows")
	assert.Contains(t, err.Error(), "product lookup")
}

func TestDetailsOf(t *testing.T) {
	details := map[string]string{"field": "email", "message": "invalid format"}
	err := fmt.Errorf("outer: %w", Validation("validation failed", details))

	assert.Equal(t, details, DetailsOf(err))
	assert.Nil(t, DetailsOf(errors.New("plain")))
}
