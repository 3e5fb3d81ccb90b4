package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jsvensson/colorname/internal/match"
	"github.com/jsvensson/colorname/internal/palette"
)

// result pairs a named color with the code the user typed.
type result struct {
	Input string `json:"input"`
	match.Output
}

func writeResults(w io.Writer, format string, results []result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []result{}
		}
		return enc.Encode(results)

	case "css":
		if len(results) == 0 {
			return nil
		}
		fmt.Fprintln(w, ":root {")
		for _, r := range results {
			fmt.Fprintf(w, "  %s;\n", r.CSS)
		}
		_, err := fmt.Fprintln(w, "}")
		return err

	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Input, r.Name, r.Hex, r.RGB, match.FormatDistance(r.Distance))
		}
		return tw.Flush()
	}
}

func writeLists(w io.Writer, store *palette.Store) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, id := range store.IDs() {
		p, _ := store.Get(id)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", id, p.Len(), p.Description)
	}
	fmt.Fprintf(tw, "%s\t%d\t%s\n", palette.All, store.Effective(palette.All).Len(), "every palette merged (default)")
	return tw.Flush()
}
