package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// RunOutput is the JSON document written by --json and the Lambda handler.
type RunOutput struct {
	Date    string       `json:"date"`
	Workers int          `json:"workers"`
	Parts   []PartResult `json:"parts"`
	TotalMs int64        `json:"totalMs"`
}

func newRunOutput(parts []PartResult, workers int) RunOutput {
	out := RunOutput{
		Date:    time.Now().UTC().Format(time.RFC3339),
		Workers: workers,
		Parts:   parts,
	}
	for _, p := range parts {
		out.TotalMs += p.TimeMs
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatBlueprints renders one row per blueprint.
func FormatBlueprints(rs []BlueprintResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %8s %8s %12s %8s\n", "Blueprint", "Geodes", "Quality", "Nodes", "Time")
	fmt.Fprintf(&b, "%-10s %8s %8s %12s %8s\n", "----------", "--------", "--------", "------------", "--------")
	for _, r := range rs {
		fmt.Fprintf(&b, "%-10d %8d %8d %12d %7.2fs\n",
			r.ID, r.Geodes, r.Quality, r.Nodes, float64(r.TimeMs)/1000)
	}
	return b.String()
}

// FormatResult renders every part's table followed by its answer.
func FormatResult(parts []PartResult) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Part %d (%d minutes)\n", p.Part, p.Minutes)
		b.WriteString(FormatBlueprints(p.Blueprints))
		fmt.Fprintf(&b, "Answer: %d in %.2fs\n", p.Answer, float64(p.TimeMs)/1000)
	}
	return b.String()
}
