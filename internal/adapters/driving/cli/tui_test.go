package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUICmd_Exists(t *testing.T) {
	found := false
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "tui" {
			found = true
			break
		}
	}
	assert.True(t, found, "tui command should be registered")
}

func TestTUICmd_Help(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
	assert.Contains(t, tuiCmd.Long, "ctrl+n")
	assert.NotNil(t, tuiCmd.RunE)
}

func TestTUICmd_WithoutServices(t *testing.T) {
	_, err := executeCommand("tui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestTUICmd_RequiresTerminal(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	original := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = original }()

	_, err := executeCommand("tui")

	assert.ErrorIs(t, err, ErrNotTerminal)
}

func TestRootCmd_OpensEditor(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	original := isTerminal
	isTerminal = func() bool { return false }
	defer func() { isTerminal = original }()

	_, err := executeCommand()

	assert.ErrorIs(t, err, ErrNotTerminal)
}
