// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brainarterynetwork/bava/metrics"
	"github.com/brainarterynetwork/bava/subject"
)

var metricsCentrality bool

type centralityRow struct {
	ID          string  `json:"id"`
	Degree      float64 `json:"degree"`
	Closeness   float64 `json:"closeness"`
	Betweenness float64 `json:"betweenness"`
	PageRank    float64 `json:"pagerank"`
}

var metricsCmd = &cobra.Command{
	Use:   "metrics <file>",
	Short: "Compute graph metrics of a tracing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := subject.New(args[0], subject.WithParseOptions(parseOptions()...), subject.WithLogger(logger))
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		if metricsCentrality {
			c, err := s.AddCentralityMeasures(ctx, metrics.WithLogger(logger))
			if err != nil {
				return err
			}
			rows := make([]centralityRow, 0, s.Graph.VertexCount())
			for _, id := range s.Graph.Vertices() {
				rows = append(rows, centralityRow{id, c.Degree[id], c.Closeness[id], c.Betweenness[id], c.PageRank[id]})
			}
			if jsonOutput {
				return printJSON(out, rows)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NODE\tDEGREE\tCLOSENESS\tBETWEENNESS\tPAGERANK")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n", r.ID, r.Degree, r.Closeness, r.Betweenness, r.PageRank)
			}
			return tw.Flush()
		}

		sum, err := s.GraphicalFeatures(ctx, metrics.WithLogger(logger))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(out, sum)
		}
		fmt.Fprintf(out, "Nodes:              %d\n", sum.Nodes)
		fmt.Fprintf(out, "Edges:              %d\n", sum.Edges)
		fmt.Fprintf(out, "Mean degree:        %.4f\n", sum.MeanDegree)
		fmt.Fprintf(out, "Avg clustering:     %.4f\n", sum.AverageClustering)
		fmt.Fprintf(out, "Components:         %d (largest %d)\n", sum.Components, sum.LargestComponent)
		if sum.Diameter != nil {
			fmt.Fprintf(out, "Diameter / radius:  %d / %d\n", *sum.Diameter, *sum.Radius)
		}
		if sum.Assortativity != nil {
			fmt.Fprintf(out, "Assortativity:      %.4f\n", *sum.Assortativity)
		}
		fmt.Fprintf(out, "Mean PageRank:      %.6f\n", sum.MeanPageRank)
		for _, w := range sum.Warnings {
			fmt.Fprintf(out, "Warning: %s\n", w)
		}
		return nil
	},
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsCentrality, "centrality", false, "print per-node centrality instead of the summary")
}
