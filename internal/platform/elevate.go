package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/model"
)

// pkexec exit codes for a dismissed or refused authorization dialog
const (
	ExitAuthDismissed = 126
	ExitAuthDenied    = 127
)

// MaxOutputInError bounds how much command output is copied into an error message
const MaxOutputInError = 512

// Runner runs a single system command to completion
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// CommandRunner executes commands, optionally prefixed with an elevation helper
type CommandRunner struct {
	helper string
}

// NewElevatedRunner returns a runner that prefixes every command with helper
// (pkexec by default). When the process already runs as root the helper is
// skipped so no authorization dialog is shown.
func NewElevatedRunner(helper string) *CommandRunner {
	if unix.Geteuid() == 0 {
		helper = ""
	}
	return &CommandRunner{helper: helper}
}

// NewDirectRunner returns a runner that executes commands without elevation
func NewDirectRunner() *CommandRunner {
	return &CommandRunner{}
}

// Helper returns the elevation helper in use, empty when commands run directly
func (r *CommandRunner) Helper() string {
	return r.helper
}

// Argv returns the full argument vector Run would execute
func (r *CommandRunner) Argv(name string, args ...string) []string {
	argv := make([]string, 0, len(args)+2)
	if r.helper != "" {
		argv = append(argv, r.helper)
	}
	argv = append(argv, name)
	return append(argv, args...)
}

// Run executes the command and waits for it. A refused authorization maps to
// model.ErrInstallationDenied, any other failure to model.ErrCommandFailed.
func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) error {
	argv := r.Argv(name, args...)
	cmdline := strings.Join(argv, " ")
	log := pslog.Ctx(ctx)
	log.Debug("run command", "cmd", cmdline)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if r.helper != "" && errors.As(err, &exitErr) {
		switch exitErr.ExitCode() {
		case ExitAuthDismissed, ExitAuthDenied:
			log.Warn("authorization refused", "cmd", cmdline, "exit", exitErr.ExitCode())
			return fmt.Errorf("%s: %w", name, model.ErrInstallationDenied)
		}
	}

	output := strings.TrimSpace(string(out))
	if len(output) > MaxOutputInError {
		output = output[:MaxOutputInError] + "..."
	}
	log.Warn("command failed", "cmd", cmdline, "err", err, "output", output)
	if output != "" {
		return fmt.Errorf("%w: %s: %s: %w", model.ErrCommandFailed, cmdline, output, err)
	}
	return fmt.Errorf("%w: %s: %w", model.ErrCommandFailed, cmdline, err)
}
