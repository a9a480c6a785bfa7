// Package megacli wraps the LSI MegaRAID MegaCli command-line tool and
// parses its report output into flat property records. One Client method
// maps to one MegaCli invocation; nothing is cached between calls.
package megacli

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Binary names probed when no explicit path is given, in order.
var binaryNames = []string{"MegaCli64", "megacli"}

// Client invokes the MegaCli binary and parses its output.
type Client struct {
	path   string
	runner Runner
}

// New creates a Client for the MegaCli binary at path. An empty path probes
// the system PATH for MegaCli64 and megacli.
func New(path string) (*Client, error) {
	if path == "" {
		resolved, err := probeBinary()
		if err != nil {
			return nil, err
		}
		path = resolved
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "megacli binary")
	}

	return &Client{path: path, runner: execRunner{}}, nil
}

// NewWithRunner creates a Client that executes commands through a custom
// Runner. The path is passed to the runner verbatim.
func NewWithRunner(path string, runner Runner) *Client {
	return &Client{path: path, runner: runner}
}

func probeBinary() (string, error) {
	for _, name := range binaryNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New("megacli binary not found in PATH")
}

// Path returns the resolved binary path.
func (c *Client) Path() string {
	return c.path
}

// Version returns the first line of the tool's -v output.
func (c *Client) Version(ctx context.Context) (string, error) {
	lines, err := c.Execute(ctx, "-v")
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}
