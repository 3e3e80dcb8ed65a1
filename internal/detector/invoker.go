package detector

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Result carries the captured output of one detector invocation. Stdout and
// stderr are captured for logging only; the report itself is read from the
// file the tool writes.
type Result struct {
	// Skipped is true when no detector executable was present; the run
	// degrades to manual-only selection.
	Skipped  bool
	ExitCode int
	Stdout   string
	Stderr   string
}

// Invoker launches the external key-reading tool.
type Invoker struct {
	executor CommandExecutor
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithExecutor overrides the command executor, used in tests.
func WithExecutor(e CommandExecutor) Option {
	return func(i *Invoker) { i.executor = e }
}

// NewInvoker returns an Invoker using os/exec by default.
func NewInvoker(opts ...Option) *Invoker {
	inv := &Invoker{executor: NewDefaultExecutor()}
	for _, opt := range opts {
		opt(inv)
	}

	return inv
}

// Run launches the detector with the report path as its sole argument and
// blocks until it exits, capturing both output streams. A missing executable
// is not an error: detection is simply unavailable on that machine. A
// non-zero exit is reported through Result, not as an error, because the
// caller only degrades to manual selection either way.
func (i *Invoker) Run(ctx context.Context, exePath, reportPath string) (Result, error) {
	if exePath == "" {
		return Result{Skipped: true}, nil
	}

	if _, err := os.Stat(exePath); err != nil {
		if os.IsNotExist(err) {
			return Result{Skipped: true}, nil
		}

		return Result{Skipped: true}, err
	}

	cmd := i.executor.CommandContext(ctx, exePath, reportPath)
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()

		return res, nil
	}

	return res, err
}

// ReadReport reads the report file the detector wrote, splits it into lines
// and deletes the file. The file is owned by the current run and must not
// leak into the next one, so removal is unconditional after a successful
// read.
func ReadReport(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	_ = os.Remove(path)

	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	return strings.Split(text, "\n"), nil
}
