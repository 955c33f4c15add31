package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sumanthreddy2024/artgen"
	"github.com/sumanthreddy2024/artgen/internal/config"
	"github.com/sumanthreddy2024/artgen/internal/presentation/tui"
	"github.com/sumanthreddy2024/artgen/pkg/adapters/file"
	"github.com/sumanthreddy2024/artgen/pkg/adapters/process"
	"github.com/sumanthreddy2024/artgen/pkg/observability"
	"github.com/sumanthreddy2024/artgen/pkg/prompt"
)

// RunOptions contains all the configuration for a run.
type RunOptions struct {
	Config      config.Config
	Debug       bool
	Interactive bool

	// Streams default to the process stdio when nil.
	Input     io.Reader
	Output    io.Writer
	LogOutput io.Writer
}

func (o *RunOptions) setDefaults() {
	if o.Input == nil {
		o.Input = os.Stdin
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.LogOutput == nil {
		o.LogOutput = os.Stderr
	}
}

// Execute collects the request from the input stream, runs both passes and
// prints the summary.
func Execute(ctx context.Context, opts RunOptions) error {
	opts.setDefaults()
	cfg := opts.Config
	logger := createLogger(opts.LogOutput, opts.Debug)

	if cfg.Banner {
		tui.PrintBanner(opts.Output, artgen.Version)
	}
	logger.Info("Starting artistic masterpiece generator")

	req, err := prompt.New(opts.Input, opts.Output, prompt.WithInteractive(opts.Interactive)).ReadRequest(ctx)
	if err != nil {
		return handleExecutionError(fmt.Errorf("failed to read input: %w", err))
	}
	logger.Debug("Request collected", "count", req.Count, "categories", len(req.Categories), "size", req.Size.String())

	metrics := observability.NewMetrics()
	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	sink := file.New(cfg.OutputDir,
		file.WithFormat(cfg.Format),
		file.WithDPMM(cfg.DPMM),
		file.WithLauncher(createProcessRunner(cfg)),
		file.WithLogger(logger),
	)

	gen := artgen.New(
		artgen.WithSeed(cfg.Seed),
		artgen.WithTempo(cfg.Tempo),
		artgen.WithLogger(logger),
		artgen.WithHooks(hooks),
		artgen.WithPlayback(sink),
		artgen.WithDisplay(sink),
	)

	res, runErr := gen.Run(ctx, req)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("Failed to export metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	if runErr != nil {
		return handleExecutionError(runErr)
	}

	printSummary(opts.Output, res, opts.Interactive)
	printSystemMessage(opts.Output, "Run %s finished.", sink.RunID)
	return nil
}

func createProcessRunner(cfg config.Config) *process.Runner {
	var procs []process.ProcessConfig
	if p, ok := process.ParseCommandLine(process.Player, cfg.Player); ok {
		procs = append(procs, p)
	}
	if p, ok := process.ParseCommandLine(process.Viewer, cfg.Viewer); ok {
		procs = append(procs, p)
	}
	return process.NewRunner(process.WithRegistry(procs...))
}

func printSummary(w io.Writer, res *artgen.Result, styled bool) {
	md := res.Markdown()
	if styled {
		if rendered, err := tui.NewRenderer()(md); err == nil {
			md = rendered
		}
	}
	fmt.Fprintln(w, md)
}
