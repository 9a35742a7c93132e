// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brainarterynetwork/bava/features"
	"github.com/brainarterynetwork/bava/subject"
)

type routeResult struct {
	From     string   `json:"from"`
	To       string   `json:"to"`
	Distance float64  `json:"distance"`
	Nodes    []string `json:"nodes"`
}

var routeCmd = &cobra.Command{
	Use:   "route <file> <from-node> <to-node>",
	Short: "Shortest distance between two nodes measured along the vessels",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := subject.New(args[0], subject.WithParseOptions(parseOptions()...), subject.WithLogger(logger))
		if err != nil {
			return err
		}
		d, nodes, err := features.VesselDistance(s.Graph, args[1], args[2])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, routeResult{From: args[1], To: args[2], Distance: d, Nodes: nodes})
		}
		fmt.Fprintf(out, "%.3f via %s\n", d, strings.Join(nodes, " -> "))
		return nil
	},
}
