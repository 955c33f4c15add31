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
	"github.com/sumanthreddy2024/artgen/internal/config"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

func testOptions(t *testing.T, input string) (RunOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	cfg.Format = "svg"
	cfg.Seed = 7
	cfg.Banner = false

	var out, logs bytes.Buffer
	return RunOptions{
		Config:    cfg,
		Input:     strings.NewReader(input),
		Output:    &out,
		LogOutput: &logs,
	}, &out, &logs
}

func TestExecute_Scenario(t *testing.T) {
	opts, out, logs := testOptions(t, "3\nline,circle,rectangle\n4,4\n")
	opts.Config.MetricsFile = filepath.Join(t.TempDir(), "artgen.prom")

	require.NoError(t, Execute(context.Background(), opts))

	entries, err := os.ReadDir(opts.Config.OutputDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, filepath.Ext(e.Name()))
	}
	assert.ElementsMatch(t, []string{".mid", ".svg"}, names)

	assert.Contains(t, logs.String(), "Starting artistic masterpiece generator")
	assert.Contains(t, logs.String(), "Composing harmonious music")
	assert.Contains(t, logs.String(), "Creating visual masterpiece")
	assert.NotContains(t, out.String(), "Enter the number of shapes", "prompts are hidden when not interactive")
	assert.Contains(t, out.String(), "3 notes at 120 bpm")
	assert.Contains(t, out.String(), ">>> Run ")

	metrics, err := os.ReadFile(opts.Config.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "artgen_notes_composed_total")
}

func TestExecute_InteractivePrompts(t *testing.T) {
	opts, out, _ := testOptions(t, "0\ncircle\n8,8\n")
	opts.Interactive = true

	require.NoError(t, Execute(context.Background(), opts))
	assert.Contains(t, out.String(), "Enter the number of shapes: ")
	assert.Contains(t, out.String(), "Enter the art size (e.g., 8,8): ")
}

func TestExecute_ZeroCountStillWritesCanvas(t *testing.T) {
	opts, out, _ := testOptions(t, "0\nline\n4,4\n")

	require.NoError(t, Execute(context.Background(), opts))

	matches, err := filepath.Glob(filepath.Join(opts.Config.OutputDir, "*.svg"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Contains(t, out.String(), "No notes composed.")
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Malformed Count", "lots\nline\n4,4\n", domain.ErrInvalidCount},
		{"Malformed Size", "2\nline\nbig\n", domain.ErrInvalidSize},
		{"Unknown Category", "3\ntriangle\n4,4\n", domain.ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, _, _ := testOptions(t, tt.input)
			err := Execute(context.Background(), opts)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_CanceledIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts, _, _ := testOptions(t, "3\nline\n4,4\n")
	assert.NoError(t, Execute(ctx, opts))
}

func TestExecute_Banner(t *testing.T) {
	opts, out, _ := testOptions(t, "1\nline\n2,2\n")
	opts.Config.Banner = true

	require.NoError(t, Execute(context.Background(), opts))
	assert.Contains(t, out.String(), "shapes & notes")
}
