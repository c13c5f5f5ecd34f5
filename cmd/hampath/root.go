// Package main - root command and shared graph-loading helpers.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/edgelist"
)

// errDirectedness signals missing or contradictory orientation flags.
var errDirectedness = errors.New("specify exactly one of --directed or --undirected")

var rootCmd = &cobra.Command{
	Use:   "hampath",
	Short: "hampath - Hamiltonian path finder",
	Long: `hampath decides whether a graph admits a Hamiltonian path — a simple
path visiting every vertex exactly once — and prints one if it does.

Graphs are read as edge lists: a header line "n m" followed by m lines "u v".
Pass "-" as the file to read from stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// resolveDirected maps the mutually exclusive orientation flags onto the
// graph's directed mode. Exactly one flag must be set.
func resolveDirected(directed, undirected bool) (bool, error) {
	if directed == undirected {
		return false, errDirectedness
	}

	return directed, nil
}

// loadGraph reads the edge list at path ("-" for stdin) with the given
// orientation mode.
func loadGraph(path string, directed bool) (*core.Graph, error) {
	if path == "-" {
		return edgelist.Parse(os.Stdin, directed)
	}

	return edgelist.ParseFile(path, directed)
}
