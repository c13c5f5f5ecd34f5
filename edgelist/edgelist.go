// Package edgelist - parser implementation.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hampath/core"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrEmptyInput indicates the input held no non-blank lines.
	ErrEmptyInput = errors.New("edgelist: empty input")

	// ErrBadHeader indicates the first line was not "n m" with n, m ≥ 0.
	ErrBadHeader = errors.New("edgelist: bad header, want \"n m\"")

	// ErrBadEdge indicates an edge line was not two integers "u v".
	ErrBadEdge = errors.New("edgelist: bad edge line, want \"u v\"")
)

// Parse reads an edge-list graph from r. The directed flag fixes the
// orientation mode of the resulting graph.
//
// Parsing stops once m edges have been read or the input ends, whichever
// comes first; a short input is not an error. Malformed lines and
// out-of-range endpoints are reported with their 1-based line number,
// wrapping the matching sentinel.
//
// Complexity: O(n + m) time, O(n + m) space (the graph itself).
func Parse(r io.Reader, directed bool) (*core.Graph, error) {
	sc := bufio.NewScanner(r)

	// 1. Header: first non-blank line is "n m".
	lineNo := 0
	header := ""
	for sc.Scan() {
		lineNo++
		header = strings.TrimSpace(sc.Text())
		if header != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if header == "" {
		return nil, ErrEmptyInput
	}
	n, m, err := parsePair(header)
	if err != nil || n < 0 || m < 0 {
		return nil, fmt.Errorf("line %d (%q): %w", lineNo, header, ErrBadHeader)
	}

	g, err := core.New(n, core.WithDirected(directed))
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	// 2. Up to m edge lines, blanks skipped, trailing lines ignored.
	read := 0
	for read < m && sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		u, v, perr := parsePair(line)
		if perr != nil {
			return nil, fmt.Errorf("line %d (%q): %w", lineNo, line, ErrBadEdge)
		}
		if aerr := g.AddEdge(u, v); aerr != nil {
			return nil, fmt.Errorf("line %d (%q): %w", lineNo, line, aerr)
		}
		read++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// ParseFile opens path and delegates to Parse.
func ParseFile(path string, directed bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	return Parse(f, directed)
}

// parsePair splits s into exactly two integers.
func parsePair(s string) (int, int, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, ErrBadEdge
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}
