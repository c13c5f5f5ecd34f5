// Package hampath decides whether a directed or undirected graph admits a
// Hamiltonian path — a simple path visiting every vertex exactly once — and,
// if so, produces one such path.
//
// 🚀 What is hampath?
//
//	A small, deterministic, pure-Go library built from three pieces:
//		• core/     — integer-vertex graph with adjacency sets and
//		  degree-ordered neighbor queries (the pruning heuristic)
//		• hamilton/ — exact backtracking search (Find) and an independent
//		  path validator (IsPath)
//		• builder/  — deterministic graph constructors (chain, cycle,
//		  complete, star) for tests, benchmarks and demos
//
// ✨ Why choose hampath?
//
//   - Exact – exhaustive search over vertex permutations, pruned by exploring
//     low-degree neighbors first; worst case O(n!), far better in practice
//   - Deterministic – fixed start and neighbor ordering; the same graph always
//     yields the same path
//   - Verifiable – every result can be certified by hamilton.IsPath, which is
//     independent of the search and accepts arbitrary candidate sequences
//   - Pure Go – no cgo; read-only graphs are safe for concurrent searches
//
// Supporting layers:
//
//	edgelist/    — text ingestion ("n m" header followed by "u v" lines)
//	cmd/hampath/ — CLI: find, check, dot (Graphviz export) and demo
//
// Quick ASCII example:
//
//	0───1
//	│   │╲
//	4───3─2
//
//	admits the Hamiltonian path 0 4 3 2 1 (among others).
//
//	go get github.com/katalvlaran/hampath
package hampath
