// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/brainarterynetwork/bava/features"
	"github.com/brainarterynetwork/bava/subject"
)

var (
	batchPattern string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract features from every tracing in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := cfg.Batch.Pattern
		if batchPattern != "" {
			pattern = batchPattern
		}
		workers := cfg.Batch.Workers
		if batchWorkers > 0 {
			workers = batchWorkers
		}

		m := subject.NewManager(
			subject.WithWorkers(workers),
			subject.WithSubjectTimeout(cfg.Batch.SubjectTimeout),
			subject.WithSkipMissing(cfg.Batch.SkipMissing),
			subject.WithManagerLogger(logger),
			subject.WithSubjectOptions(subject.WithParseOptions(parseOptions()...)),
		)

		start := time.Now()
		if _, err := m.LoadDir(cmd.Context(), args[0], pattern); err != nil {
			return err
		}
		elapsed := time.Since(start)

		out := cmd.OutOrStdout()
		ids := m.IDs()
		if jsonOutput {
			all := make(map[string]map[string]float64, len(ids))
			for _, id := range ids {
				s, err := m.Get(id)
				if err != nil {
					return err
				}
				all[id] = s.MorphologicalFeatures()
			}
			return printJSON(out, all)
		}

		var bytes uint64
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "SUBJECT\tNODES\tEDGES\tLENGTH\tBRANCHES\tSIZE")
		for _, id := range ids {
			s, err := m.Get(id)
			if err != nil {
				return err
			}
			total := s.Summary()[features.TotalKey]
			size := uint64(s.Trace.Bytes)
			bytes += size
			fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\t%d\t%s\n",
				id, s.Graph.VertexCount(), s.Graph.EdgeCount(), total.Length, total.BranchNumber, humanize.Bytes(size))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d subjects, %s read in %s\n", len(ids), humanize.Bytes(bytes), elapsed.Round(time.Millisecond))
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "", "file glob inside the directory (default from config)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "parallel subjects (default from config)")
}
