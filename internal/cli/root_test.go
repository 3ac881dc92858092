package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	savePath := filepath.Join(dir, "savegame.json")
	configPath := filepath.Join(dir, "config.yml")

	content := "log-level: debug\nstorage:\n  driver: file\n  file-path: " + savePath + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath, savePath
}

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	cmd := NewRootCmd(strings.NewReader(input), out, errOut)
	cmd.SetArgs(args)
	cmd.SetOut(errOut)
	cmd.SetErr(errOut)

	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestRootCmd(t *testing.T) {
	t.Run("Runs the menu and exits", func(t *testing.T) {
		configPath, _ := writeTestConfig(t)

		out, _, err := execute(t, "3\n", "--config", configPath)

		require.NoError(t, err)
		assert.Contains(t, out, "Welcome to Tic-Tac-Toe!")
		assert.Contains(t, out, "Exiting the game...")
	})

	t.Run("Saves moves to the configured file", func(t *testing.T) {
		// Given: a two-player game abandoned after one move
		configPath, savePath := writeTestConfig(t)

		// When: running the menu
		_, logs, err := execute(t, "1\n2\n1\n1\n", "--config", configPath)

		// Then: the snapshot file exists and logs went to the error stream
		require.NoError(t, err)
		assert.FileExists(t, savePath)
		assert.Contains(t, logs, `"msg":"move applied"`)
	})

	t.Run("Log level flag overrides the config", func(t *testing.T) {
		configPath, _ := writeTestConfig(t)

		_, logs, err := execute(t, "1\n2\n1\n1\n", "--config", configPath, "--log-level", "error")

		require.NoError(t, err)
		assert.NotContains(t, logs, "move applied")
	})
}

func TestSimulateCmd(t *testing.T) {
	t.Run("Prints the tally", func(t *testing.T) {
		configPath, savePath := writeTestConfig(t)

		out, _, err := execute(t, "", "simulate", "--games", "5", "--config", configPath)

		require.NoError(t, err)
		assert.Contains(t, out, "Games: 5")
		assert.Contains(t, out, "X wins: ")
		assert.Contains(t, out, "O wins: ")
		assert.Contains(t, out, "Draws: ")
		assert.NoFileExists(t, savePath)
	})

	t.Run("Rejects a non-positive game count", func(t *testing.T) {
		configPath, _ := writeTestConfig(t)

		_, _, err := execute(t, "", "simulate", "-n", "0", "--config", configPath)

		require.ErrorIs(t, err, errInvalidGames)
	})
}

func TestDiscardCmd(t *testing.T) {
	t.Run("Deletes an existing save", func(t *testing.T) {
		configPath, savePath := writeTestConfig(t)
		require.NoError(t, os.WriteFile(savePath, []byte("{}"), 0o600))

		out, _, err := execute(t, "", "discard", "--config", configPath)

		require.NoError(t, err)
		assert.Contains(t, out, "Saved game deleted.")
		assert.NoFileExists(t, savePath)
	})

	t.Run("Reports when there is nothing to delete", func(t *testing.T) {
		configPath, _ := writeTestConfig(t)

		out, _, err := execute(t, "", "discard", "--config", configPath)

		require.NoError(t, err)
		assert.Contains(t, out, "No saved game found.")
	})
}
