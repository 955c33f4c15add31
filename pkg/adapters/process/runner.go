package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Registered process names.
const (
	Player = "player"
	Viewer = "viewer"
)

// EnvFile carries the artifact path to launched processes.
const EnvFile = "ARTGEN_FILE"

// ErrNotRegistered is returned when launching a name with no configured command.
var ErrNotRegistered = errors.New("process not registered")

// Runner launches allow-listed external programs on generated artifacts.
type Runner struct {
	registry map[string]RegisteredProcess
	baseDir  string
}

// RegisteredProcess defines an allowed command execution.
type RegisteredProcess struct {
	Command string
	Args    []string
}

// Result is the captured outcome of a launch.
type Result struct {
	Name   string
	Output string
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithRegistry populates the allow-list from configs.
func WithRegistry(procs ...ProcessConfig) RunnerOption {
	return func(r *Runner) {
		for _, p := range procs {
			r.Register(p.Name, p.Command, p.Args...)
		}
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// NewRunner creates a new process runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		registry: make(map[string]RegisteredProcess),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a trusted command to the allow-list.
func (r *Runner) Register(name string, command string, args ...string) {
	r.registry[name] = RegisteredProcess{
		Command: command,
		Args:    args,
	}
}

// Has reports whether name is registered.
func (r *Runner) Has(name string) bool {
	_, ok := r.registry[name]
	return ok
}

// Launch runs the process registered under name with file appended to its
// arguments, and waits for it to exit. The path is also exported as
// ARTGEN_FILE.
func (r *Runner) Launch(ctx context.Context, name, file string) (Result, error) {
	proc, ok := r.registry[name]
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}

	args := append(append([]string{}, proc.Args...), file)
	cmd := exec.CommandContext(ctx, proc.Command, args...)
	cmd.Dir = r.baseDir
	cmd.Env = append(cmd.Environ(), EnvFile+"="+file)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Result{Name: name}, fmt.Errorf("%s execution failed: %w. Stderr: %s", name, err, strings.TrimSpace(stderr.String()))
	}

	return Result{Name: name, Output: strings.TrimSpace(stdout.String())}, nil
}
