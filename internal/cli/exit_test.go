package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExitCode(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(base))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "", base)))
	assert.Equal(t, ExitCommandError,
		GetExitCode(fmt.Errorf("outer: %w", WrapExitError(ExitCommandError, "inner", base))))
}

func TestExitErrorMessage(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, "boom", WrapExitError(ExitFailure, "", base).Error())
	assert.Equal(t, "loading: boom", WrapExitError(ExitFailure, "loading", base).Error())
	assert.Equal(t, "just this", (&ExitError{Code: ExitFailure, Message: "just this"}).Error())
	assert.ErrorIs(t, WrapExitError(ExitFailure, "", base), base)
}
