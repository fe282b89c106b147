// Package beauty implements the Beauty best-first search engine: a
// single-pass search over searchtask.Task that climbs an edge's
// estimation ladder only as far as two thresholds (l_est, l_prune)
// require, instead of always resolving an edge's exact cost before
// accepting it.
//
// Overview:
//
// Beauty draws states from an openlist.OpenList ordered by an
// evaluation.Evaluator's value (EstimatedGEvaluator by default, which
// is just the node's currently-estimated min_g). Expanding a state
// estimates each outgoing edge rung by rung — via estimation.Estimator,
// chosen by BeautyHash by default — stopping early once either the
// edge's min_g clears l_est (good enough to accept without knowing the
// exact cost) or clears l_prune (bad enough to discard regardless of
// the exact cost). A re-encountered edge that was already estimated to
// the same (parent, operator) pair skips re-estimation entirely and
// reuses its recorded bounds.
//
// When a goal is popped, Beauty performs one more pass: it walks the
// found plan's edges from goal to root, re-invoking the ladder on each
// to refine the plan's cost bound as far as the ladder allows, and
// compares the refined bound against the next-best entry remaining in
// the open list to decide whether the plan is certifiably optimal.
//
// Key features:
//
//   - l_est/l_prune gating bounds how much estimation work a single run
//     performs, trading certainty for speed.
//   - Closed-node reopening is optional (Options.ReopenClosed); when
//     disabled, a tighter bound for an already-closed node is recorded
//     via UpdateParent without reinserting it into the open list.
//   - End-of-search refinement reports both the bound found during the
//     search and a refined bound, plus whether the two are provably
//     optimal relative to the open list's runner-up.
//
// Error handling: Run returns ErrNilTask/ErrNilOpenList for setup
// mistakes; everything else is reported through Result.Status.
package beauty
