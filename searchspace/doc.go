// Package searchspace owns per-state search metadata: the NEW/OPEN/
// CLOSED/DEAD_END lifecycle every discovered state moves through, and the
// registry that keyes this bookkeeping by state identity.
//
// Overview:
//
//	A Space is a map from searchtask.StateID to *NodeInfo. Node wraps a
//	searchtask.State together with its *NodeInfo and is the only way
//	callers mutate node state — the same "thin handle over owned metadata"
//	split the original engine uses (SearchNode vs. SearchNodeInfo).
//
// Key features:
//
//	  - Status only ever moves NEW -> OPEN -> CLOSED -> OPEN (via Reopen)
//	    or to DEAD_END from any state, never back out of DEAD_END.
//	  - SetEstimationInfoBasedOnEdge reconstructs a fresh estimation.Info
//	    from a node's already-recorded per-edge bounds plus its parent's
//	    bounds, letting a re-encountered edge resume its ladder rank
//	    instead of restarting from rank 0.
//
// Thread safety:
//
//	Space carries no internal locking. The search engines built on top of
//	it run a single-threaded best-first loop (see SPEC_FULL.md §5), so a
//	plain map is enough — unlike core.Graph, which is a general-purpose
//	library type shared across goroutines and therefore needs its own
//	sync.RWMutex guards.
package searchspace
