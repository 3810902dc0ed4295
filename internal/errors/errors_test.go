package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	underlying := New("manifest is broken")

	tests := []struct {
		name           string
		err            *ExitError
		wantCode       int
		wantSuggestion string
		wantMessage    string
	}{
		{
			name:        "explicit code",
			err:         NewExitError(underlying, ExitSystem),
			wantCode:    ExitSystem,
			wantMessage: "manifest is broken",
		},
		{
			name:           "user error",
			err:            NewUserError(underlying, "try --help"),
			wantCode:       ExitUser,
			wantSuggestion: "try --help",
			wantMessage:    "manifest is broken",
		},
		{
			name:           "system error",
			err:            NewSystemError(underlying, "check permissions"),
			wantCode:       ExitSystem,
			wantSuggestion: "check permissions",
			wantMessage:    "manifest is broken",
		},
		{
			name:           "manifest error",
			err:            NewManifestError(underlying),
			wantCode:       ExitUser,
			wantSuggestion: "Run: fel4cfg validate",
			wantMessage:    "manifest is broken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantSuggestion, tt.err.Suggestion)
			assert.Equal(t, tt.wantMessage, tt.err.Error())
			assert.ErrorIs(t, tt.err, underlying)
		})
	}
}

func TestExitError_NilUnderlying(t *testing.T) {
	err := NewExitError(nil, ExitUser)
	assert.Equal(t, "exit code 1", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestExitError_AsThroughWrapping(t *testing.T) {
	inner := NewUserError(New("bad flag"), "see usage")
	wrapped := Wrap(inner, "running command")

	var exitErr *ExitError
	require.True(t, As(wrapped, &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "see usage", exitErr.Suggestion)
}

func TestPassThroughs(t *testing.T) {
	sentinel := New("sentinel")
	assert.True(t, Is(Wrap(sentinel, "context"), sentinel))
	assert.Nil(t, Wrap(nil, "context"))
	assert.EqualError(t, Newf("value %d", 7), "value 7")
	assert.True(t, stderrors.Is(Wrapf(sentinel, "op %s", "x"), sentinel))
}
