// Package main - the check command: certify a candidate path against a graph.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/hamilton"
)

// errNotHamiltonian drives the non-zero exit code for invalid candidates.
var errNotHamiltonian = errors.New("candidate is not a Hamiltonian path")

// Check command flags.
var (
	checkDirected   bool
	checkUndirected bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file> <v0> <v1> ...",
	Short: "Certify a candidate path against a graph",
	Long: `Check whether the given vertex sequence is a Hamiltonian path of the
edge-list graph in <file>. The candidate may be arbitrarily malformed; any
defect (wrong length, repeats, out-of-range ids, missing edges) makes it
invalid.

Exits 0 and prints "valid" for a Hamiltonian path, exits 1 otherwise.

Example:
  hampath check --undirected graph.txt 0 1 2 3 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkDirected, "directed", false, "treat edges as one-way")
	checkCmd.Flags().BoolVar(&checkUndirected, "undirected", false, "treat edges as two-way")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	directed, err := resolveDirected(checkDirected, checkUndirected)
	if err != nil {
		return err
	}

	g, err := loadGraph(args[0], directed)
	if err != nil {
		return err
	}

	candidate := make([]int, 0, len(args)-1)
	for _, a := range args[1:] {
		v, perr := strconv.Atoi(a)
		if perr != nil {
			return fmt.Errorf("bad vertex id %q: %w", a, perr)
		}
		candidate = append(candidate, v)
	}

	if !hamilton.IsPath(g, candidate) {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")

		return errNotHamiltonian
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")

	return nil
}
