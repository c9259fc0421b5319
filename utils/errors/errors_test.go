package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType constant.ErrorType
	}{
		{"custom", SetCustomError(constant.ErrInsufficientSeats), constant.ErrInsufficientSeats},
		{"wrapped", fmt.Errorf("book: %w", SetCustomError(constant.ErrNotFound)), constant.ErrNotFound},
		{"plain", stderrors.New("deadlock"), constant.ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := From(tt.err)
			assert.Equal(t, tt.wantType, got.Type())
			assert.True(t, Is(got, tt.wantType))
		})
	}
}

func TestIs(t *testing.T) {
	assert.False(t, Is(stderrors.New("x"), constant.ErrInternal))
	assert.False(t, Is(SetCustomError(constant.ErrNotFound), constant.ErrForbidden))
	assert.Equal(t, http.StatusNotFound, SetCustomError(constant.ErrNotFound).ErrorHTTPCode())
}
