package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/docker/go-units"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// formatBytes renders a byte count using binary units, matching how the
// controller reports sizes.
func formatBytes(v float64) string {
	if v <= 0 {
		return "-"
	}
	return units.BytesSize(v)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}
