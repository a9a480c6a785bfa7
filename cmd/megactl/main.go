// megactl is a thin control CLI for MegaRAID adapters: it lists adapters,
// enclosures, drives and batteries, and creates or removes logical drives.
package main

import (
	"fmt"
	"os"
)

// Build-time variables (set via -ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
