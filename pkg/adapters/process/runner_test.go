package process

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Launch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	runner := NewRunner()
	runner.Register("echo_arg", "echo", "opening")
	runner.Register("echo_env", "sh", "-c", "echo $"+EnvFile)
	runner.Register("fail", "sh", "-c", "echo broken >&2; exit 3")

	t.Run("Appends File Argument", func(t *testing.T) {
		result, err := runner.Launch(context.Background(), "echo_arg", "art.png")
		require.NoError(t, err)
		assert.Equal(t, "opening art.png", result.Output)
	})

	t.Run("Exports File Env Var", func(t *testing.T) {
		result, err := runner.Launch(context.Background(), "echo_env", "song.mid")
		require.NoError(t, err)
		assert.Equal(t, "song.mid", result.Output)
	})

	t.Run("Fails For Unregistered Command", func(t *testing.T) {
		_, err := runner.Launch(context.Background(), Player, "song.mid")
		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("Reports Stderr On Failure", func(t *testing.T) {
		_, err := runner.Launch(context.Background(), "fail", "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}

func TestParseCommandLine(t *testing.T) {
	cfg, ok := ParseCommandLine(Player, "  timidity -Os  ")
	require.True(t, ok)
	assert.Equal(t, ProcessConfig{Name: Player, Command: "timidity", Args: []string{"-Os"}}, cfg)

	_, ok = ParseCommandLine(Viewer, "   ")
	assert.False(t, ok)

	runner := NewRunner(WithRegistry(cfg))
	assert.True(t, runner.Has(Player))
	assert.False(t, runner.Has(Viewer))
}
