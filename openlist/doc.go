// Package openlist defines the frontier a search engine pops states from,
// plus the pruning hook that filters an expanded state's applicable
// operators before its successors are generated.
//
// Overview:
//
//	OpenList and PruningMethod are boundary collaborators (consumed, not
//	designed) — a host can plug in any priority discipline. Heap is the one
//	concrete OpenList this module ships: a binary min-heap over evaluator
//	values, adapted from the lazy-decrease-key priority queue pattern used
//	throughout the teacher corpus (push a fresh entry on every improvement,
//	let stale entries go stale rather than decrease-key them in place).
//
// Key features:
//
//	  - Heap never removes a stale entry eagerly; RemoveMin may return an
//	    entry whose state has since moved to CLOSED or DEAD_END — the
//	    caller (the search loop) is expected to skip those, exactly as
//	    spec.md's best-first loop shape requires.
package openlist
