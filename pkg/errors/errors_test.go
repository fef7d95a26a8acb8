package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCodeThroughChain(t *testing.T) {
	base := fmt.Errorf("dial tcp: refused")
	err := fmt.Errorf("lookup: %w", Wrap(CodeAssistantError, "employee lookup failed", base))

	require.True(t, IsCode(err, CodeAssistantError))
	require.False(t, IsCode(err, CodeInvalidInput))
	require.ErrorIs(t, err, base)
	require.Equal(t, "lookup: employee lookup failed: dial tcp: refused", err.Error())
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, "", CodeOf(fmt.Errorf("plain")))
	require.Equal(t, CodeInvalidInput, CodeOf(Wrap(CodeInvalidInput, "bad", nil)))
}
