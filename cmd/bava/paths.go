// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brainarterynetwork/bava/swc"
)

type pathInfo struct {
	Index    int     `json:"index"`
	Vessel   string  `json:"vessel"`
	Points   int     `json:"points"`
	Retained int     `json:"retained"`
	Length   float64 `json:"length"`
}

var pathsCmd = &cobra.Command{
	Use:   "paths <file>",
	Short: "List the paths of a tracing and their down-sampled sizes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := swc.ReadFile(args[0], parseOptions()...)
		if err != nil {
			return err
		}

		infos := make([]pathInfo, len(tr.Downsampled))
		for i, d := range tr.Downsampled {
			length := 0.0
			for j := 1; j < len(d.Points); j++ {
				length += swc.Distance(d.Points[j-1].Position, d.Points[j].Position)
			}
			infos[i] = pathInfo{
				Index:    i,
				Vessel:   d.Segment().String(),
				Points:   len(tr.Paths[i].Points),
				Retained: len(d.Points),
				Length:   length,
			}
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, infos)
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tVESSEL\tPOINTS\tRETAINED\tLENGTH")
		for _, p := range infos {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.3f\n", p.Index, p.Vessel, p.Points, p.Retained, p.Length)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d points, %d paths\n", len(tr.Points), len(tr.Paths))
		return nil
	},
}
