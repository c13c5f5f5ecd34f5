// Package main - the demo command: two worked examples, no input required.
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/hamilton"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run two built-in examples",
	Long: `Run two demonstration graphs without any input file: an undirected
five-vertex cycle that admits a Hamiltonian path, and a directed graph with
two isolated vertices that does not.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Example 1: undirected cycle C5 (has a Hamiltonian path)")
	g1, err := builder.Cycle(5, false)
	if err != nil {
		return err
	}
	if err = report(out, g1); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Example 2: directed two-cycle with isolated vertices (has none)")
	g2, err := core.New(4, core.WithDirected(true))
	if err != nil {
		return err
	}
	if err = g2.AddEdge(0, 1); err != nil {
		return err
	}
	if err = g2.AddEdge(1, 0); err != nil {
		return err
	}

	return report(out, g2)
}

// report runs the search on g and prints the verdict in find's format.
func report(out io.Writer, g *core.Graph) error {
	res, err := hamilton.Find(g)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintln(out, noPathMessage)

		return nil
	}
	fmt.Fprintln(out, formatPath(res.Path))

	return nil
}
