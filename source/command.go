// Package source produces the raw battery data btbar renders: command output
// from system_profiler and pmset, BlueZ properties over D-Bus, and the OS
// battery API.
package source

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Runner executes an external command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, argv []string) ([]byte, error)
}

type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).Output()
	if err != nil {
		return out, errors.Wrapf(err, "run %s", strings.Join(argv, " "))
	}
	return out, nil
}

// Run a command, returning its trimmed output. Failures come back as the
// empty string along with the error, so callers can degrade to "unknown".
func Text(ctx context.Context, r Runner, argv []string) (string, error) {
	out, err := r.Output(ctx, argv)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
