package fixtures

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "ErrStorageError", err: ErrStorageError, wantMsg: "fixtures: storage error"},
		{name: "ErrNetworkError", err: ErrNetworkError, wantMsg: "fixtures: network error"},
		{name: "ErrRemoteError", err: ErrRemoteError, wantMsg: "fixtures: unexpected response from source"},
		{name: "ErrInvalidConfig", err: ErrInvalidConfig, wantMsg: "fixtures: invalid configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			assert.True(t, strings.HasPrefix(tt.err.Error(), "fixtures: "))
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := fmt.Errorf("%w: writing xc.npy: %w", ErrStorageError, cause)

	assert.ErrorIs(t, wrapped, ErrStorageError)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, ErrNetworkError)
}
