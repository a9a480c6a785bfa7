package megacli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Runner executes the MegaCli binary. The default implementation shells out
// via os/exec; tests substitute canned output.
type Runner interface {
	// Run executes path with args and returns captured stdout, stderr and
	// the process exit code. err is non-nil only when the process could not
	// be run at all.
	Run(ctx context.Context, path string, args ...string) (stdout, stderr string, exitCode int, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, path string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
		}
		return "", "", 0, err
	}
	return stdout.String(), stderr.String(), 0, nil
}

// CommandError reports a MegaCli invocation that exited non-zero.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("megacli %s: exit status %d: %s",
		strings.Join(e.Args, " "), e.ExitCode, strings.TrimSpace(e.Stderr))
}

var colonSpacing = regexp.MustCompile(`\s*:\s*`)

// Execute runs the binary with args plus -NoLog and returns its stdout as
// normalized lines: trimmed, non-empty, lower-cased, with "key : value"
// spacing collapsed to "key:value" and trailing colons stripped.
func (c *Client) Execute(ctx context.Context, args ...string) ([]string, error) {
	args = append(args, "-NoLog")

	stdout, stderr, exitCode, err := c.runner.Run(ctx, c.path, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "running %s", c.path)
	}
	if exitCode != 0 {
		return nil, &CommandError{Args: args, ExitCode: exitCode, Stderr: stderr}
	}
	return normalizeOutput(stdout), nil
}

func normalizeOutput(out string) []string {
	var lines []string
	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		line = strings.ToLower(line)
		line = colonSpacing.ReplaceAllString(line, ":")
		line = strings.TrimSuffix(line, ":")
		lines = append(lines, line)
	}
	return lines
}
