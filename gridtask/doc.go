// Package gridtask is a concrete, deterministic searchtask.Task: a
// rectangular grid of cells, each with a per-cell traversal cost, with
// four-directional movement and a single goal cell.
//
// This supplements SPEC_FULL.md with a runnable task the core's abstract
// engines can be pointed at in tests, examples and the CLI — grounded on
// the teacher's builder package, which supplies concrete graphs for
// dijkstra and the other abstract algorithms to run against.
package gridtask
