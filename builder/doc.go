// Package builder provides deterministic constructors for the standard graph
// shapes used across hampath's tests, benchmarks, examples and the CLI demo.
//
// Constructors:
//
//   - Chain(n, directed):    the path graph 0─1─…─(n-1); directed chains run
//     low id → high id. Admits exactly the identity Hamiltonian path.
//   - Cycle(n, directed):    the cycle C_n (chain plus closing edge).
//   - Complete(n, directed): K_n; directed variants carry both orientations
//     of every pair.
//   - Star(n, directed):     hub 0 joined to every leaf; admits no
//     Hamiltonian path for n > 3, a useful guaranteed-negative fixture.
//
// Guarantees:
//
//   - Deterministic: edges are emitted in increasing (u, v) order, so two
//     invocations with the same arguments produce identical graphs.
//   - Only sentinel errors from core are returned; constructors never panic.
//
// Complexity: O(n) for Chain/Cycle/Star, O(n²) for Complete.
package builder
