// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brainarterynetwork/bava/plot"
	"github.com/brainarterynetwork/bava/subject"
)

var plotOutput string

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "Write the 3D scene of a tracing as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := subject.New(args[0], subject.WithParseOptions(parseOptions()...), subject.WithLogger(logger))
		if err != nil {
			return err
		}
		scene, err := s.Plot(
			plot.WithEdgeWidth(cfg.Plot.EdgeWidth),
			plot.WithNodeSize(cfg.Plot.NodeSize),
			plot.WithNodeOpacity(cfg.Plot.NodeOpacity),
		)
		if err != nil {
			return err
		}

		if plotOutput == "" || plotOutput == "-" {
			return scene.WriteJSON(cmd.OutOrStdout())
		}
		f, err := os.Create(plotOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", plotOutput, err)
		}
		if err := scene.WriteJSON(f); err != nil {
			f.Close()
			return err
		}
		logger.Info("scene written", "path", plotOutput, "edges", len(scene.Edges), "nodes", len(scene.Nodes.IDs))
		return f.Close()
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "-", "output file (- for stdout)")
}
