// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/brainarterynetwork/bava/subject"
)

var featuresFlat bool

var featuresCmd = &cobra.Command{
	Use:   "features <file>",
	Short: "Compute the hierarchical morphological features of a tracing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := subject.New(args[0], subject.WithParseOptions(parseOptions()...), subject.WithLogger(logger))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case featuresFlat && jsonOutput:
			return printJSON(out, s.MorphologicalFeatures())
		case featuresFlat:
			return printFlat(out, s.MorphologicalFeatures())
		case jsonOutput:
			return printJSON(out, s.Summary())
		default:
			return printTable(out, s.Summary())
		}
	},
}

func init() {
	featuresCmd.Flags().BoolVar(&featuresFlat, "flat", false, "print <key>_length and <key>_branch_number entries")
}
