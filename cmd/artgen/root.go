package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/sumanthreddy2024/artgen/internal/cli"
	"github.com/sumanthreddy2024/artgen/internal/config"
	"golang.org/x/term"
)

var rootCmd = &cobra.Command{
	Use:   "artgen",
	Short: "artgen draws random shapes and composes notes to match",
	Long: `artgen asks for a shape count, a list of shape types (line, circle, rectangle)
and an art size, then writes a MIDI score and a picture built from random draws.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveRunOptions(cmd)
		if err != nil {
			return err
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		if err := cli.Execute(sigCtx, opts); err != nil {
			return err
		}
		if sigCtx.Signal() != nil {
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), ">>> Interrupted.")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	f := rootCmd.Flags()
	f.String("config", "", "Path to a YAML config file (default: ./artgen.yaml if present)")
	f.StringP("out", "o", "", "Directory for the generated score and artwork")
	f.String("format", "", "Artwork format: png, svg or pdf")
	f.Uint64("seed", 0, "Random seed for reproducible runs (0 = random)")
	f.Float64("tempo", 0, "Score tempo in beats per minute")
	f.String("player", "", "Command used to play the MIDI file, e.g. \"timidity\"")
	f.String("viewer", "", "Command used to open the artwork, e.g. \"xdg-open\"")
	f.String("metrics-file", "", "Write run metrics to this Prometheus textfile")
	f.Bool("debug", false, "Log every sampled shape and note")
	f.Bool("no-banner", false, "Do not print the banner")
	f.Bool("interactive", false, "Print prompts even when stdin is not a terminal")
}

// resolveRunOptions layers explicitly set flags over the loaded config.
func resolveRunOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	f := cmd.Flags()

	path, _ := f.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cli.RunOptions{}, err
	}

	if f.Changed("out") {
		cfg.OutputDir, _ = f.GetString("out")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("tempo") {
		cfg.Tempo, _ = f.GetFloat64("tempo")
	}
	if f.Changed("player") {
		cfg.Player, _ = f.GetString("player")
	}
	if f.Changed("viewer") {
		cfg.Viewer, _ = f.GetString("viewer")
	}
	if f.Changed("metrics-file") {
		cfg.MetricsFile, _ = f.GetString("metrics-file")
	}
	if noBanner, _ := f.GetBool("no-banner"); noBanner {
		cfg.Banner = false
	}
	if err := cfg.Validate(); err != nil {
		return cli.RunOptions{}, err
	}

	debug, _ := f.GetBool("debug")
	interactive, _ := f.GetBool("interactive")
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	if !stdinTTY {
		cfg.Banner = cfg.Banner && interactive
	}

	return cli.RunOptions{
		Config:      cfg,
		Debug:       debug,
		Interactive: interactive || stdinTTY,
		Input:       cmd.InOrStdin(),
		Output:      cmd.OutOrStdout(),
		LogOutput:   cmd.ErrOrStderr(),
	}, nil
}
