// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/brainarterynetwork/bava/features"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printTable(w io.Writer, t features.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tLENGTH\tBRANCHES")
	for _, k := range t.Keys() {
		fmt.Fprintf(tw, "%s\t%.3f\t%d\n", k, t[k].Length, t[k].BranchNumber)
	}
	return tw.Flush()
}

func printFlat(w io.Writer, flat map[string]float64) error {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(tw, "%s\t%g\n", k, flat[k])
	}
	return tw.Flush()
}
