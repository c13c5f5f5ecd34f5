// Package main - the find command: search a graph for a Hamiltonian path.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/hamilton"
)

// noPathMessage is the canonical not-found output, kept stable for scripts.
const noPathMessage = "NO HAMILTONIAN PATH"

// Find command flags.
var (
	findDirected     bool
	findUndirected   bool
	findDegreeStarts bool
)

var findCmd = &cobra.Command{
	Use:   "find <file>",
	Short: "Search a graph for a Hamiltonian path",
	Long: `Search the edge-list graph in <file> for a Hamiltonian path.

Prints the path as space-separated vertex ids, or "` + noPathMessage + `"
when the graph admits none (which is a normal verdict, not an error).

Examples:
  hampath find --undirected graph.txt
  hampath find --directed graph.txt
  cat graph.txt | hampath find --undirected -`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findDirected, "directed", false, "treat edges as one-way")
	findCmd.Flags().BoolVar(&findUndirected, "undirected", false, "treat edges as two-way")
	findCmd.Flags().BoolVar(&findDegreeStarts, "degree-starts", false,
		"try low-degree starting vertices first (may return a different, equally valid path)")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	directed, err := resolveDirected(findDirected, findUndirected)
	if err != nil {
		return err
	}

	g, err := loadGraph(args[0], directed)
	if err != nil {
		return err
	}

	var opts []hamilton.Option
	if findDegreeStarts {
		opts = append(opts, hamilton.WithStartOrder(hamilton.AscendingDegree))
	}

	res, err := hamilton.Find(g, opts...)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintln(cmd.OutOrStdout(), noPathMessage)

		return nil
	}

	// Safety check: certify the result against the graph before printing.
	if !hamilton.IsPath(g, res.Path) {
		return errors.New("internal: found path failed validation")
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatPath(res.Path))

	return nil
}

// formatPath renders a path as space-separated vertex ids.
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
