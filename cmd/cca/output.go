package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"mad-cca/internal/runner"
	"mad-cca/internal/sweep"
)

func printResult(w io.Writer, res runner.Result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(w, "run %s\n", res.RunID)
	fmt.Fprintf(w, "  lattice    %dx%d, %d particles, seed %d\n", res.Size, res.Size, res.Particles, res.Seed)
	fmt.Fprintf(w, "  steps      %d (%s)\n", res.Steps, res.Elapsed.Round(time.Microsecond))
	fmt.Fprintf(w, "  clusters   %d (largest %d, %d merges)\n", res.Clusters, res.Largest, res.Merges)
	if res.HasDimension {
		fmt.Fprintf(w, "  dimension  %.4f\n", res.Dimension)
	}
	fmt.Fprintln(w, "  box counts")
	for _, s := range res.BoxCounts.Sizes() {
		fmt.Fprintf(w, "    %4d %6d\n", s, res.BoxCounts[s])
	}
	return nil
}

func printSummary(w io.Writer, sum sweep.Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tSTEPS\tCLUSTERS\tLARGEST\tDIMENSION")
	for _, r := range sum.Results {
		dim := "-"
		if r.HasDimension {
			dim = fmt.Sprintf("%.4f", r.Dimension)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n", r.Seed, r.Steps, r.Clusters, r.Largest, dim)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d/%d complete, mean steps %.1f\n", sum.Complete, len(sum.Results), sum.MeanSteps)
	if sum.Estimates > 0 {
		fmt.Fprintf(w, "dimension %.4f ± %.4f over %d runs\n", sum.MeanDimension, sum.StdDimension, sum.Estimates)
	}
	return nil
}
