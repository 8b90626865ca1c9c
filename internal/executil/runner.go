// Package executil runs external tools and captures their output for
// software discovery. Invocations are synchronous; a hung child process
// blocks the caller until it exits or is killed from outside.
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
)

// Result holds the captured output of a single child process run.
// It is produced once per invocation and not retained afterward.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external program and captures text stdout/stderr
// and the exit code. A non-zero exit is reported through Result, not the
// error return; the error return is reserved for spawn-level failure.
type Runner interface {
	Run(ctx context.Context, args []string) (Result, error)
}

// OSRunner is the default Runner backed by os/exec.
type OSRunner struct {
	logger *zerolog.Logger
	debug  bool
	goos   string
}

// NewOSRunner creates an OSRunner. The debug flag gates the per-invocation
// diagnostic log line.
func NewOSRunner(log *zerolog.Logger, debug bool) *OSRunner {
	return NewOSRunnerForOS(log, debug, runtime.GOOS)
}

// NewOSRunnerForOS creates an OSRunner with a pinned platform identifier
// (useful for testing the Windows dispatch on other hosts).
func NewOSRunnerForOS(log *zerolog.Logger, debug bool, goos string) *OSRunner {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &OSRunner{logger: log, debug: debug, goos: goos}
}

// Run executes args as a child process and returns its captured output.
// On the Windows family the command goes through the shell (cmd /C);
// everywhere else the argument vector is passed structurally.
func (r *OSRunner) Run(ctx context.Context, args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, errors.New("empty argument vector")
	}

	if r.debug {
		// Quoted form is for the log line only; it is never what gets
		// executed on the non-Windows path.
		r.logger.Debug().Str("cmd", shellquote.Join(args...)).Msg("running")
	}

	cmd := r.command(ctx, args)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("failed to run %q: %w", args[0], err)
	}

	return res, nil
}

func (r *OSRunner) command(ctx context.Context, args []string) *exec.Cmd {
	if r.goos == "windows" {
		// cmd.exe applies its own quoting rules; the joined string here
		// mirrors what a list passed to a shell invocation becomes.
		return exec.CommandContext(ctx, "cmd", "/C", strings.Join(args, " "))
	}
	return exec.CommandContext(ctx, args[0], args[1:]...)
}
