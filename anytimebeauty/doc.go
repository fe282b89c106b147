// Package anytimebeauty implements the AnytimeBeauty driver: it repeats
// Beauty searches over the same task, progressively raising l_est and
// l_prune from "no pruning, cheapest estimator only" toward the
// tightest bound the previous iteration certified, until an iteration
// reports an optimal plan.
//
// Overview:
//
// Iteration 1 runs unconstrained (l_est=0, l_prune=+Inf) to get a cheap
// first plan fast. Iterations 2..max_iter-1 run with l_est = the
// previous iteration's lower bound and l_prune = the best upper bound
// certified so far, progressively spending more on estimation without
// ever exceeding the cost of discarding a plan no worse than the one
// already held. The final iteration (iter == max_iter) forces
// l_est = l_prune = the best upper bound, effectively demanding an
// exact re-certification. Exceeding max_iter is a control-flow error
// (searchengine.ErrCritical), not a FAILED result — the driver is not
// supposed to still be iterating at that point.
//
// Key features:
//
//   - Saves the plan only when an iteration's refined cost is no worse
//     than the best certified so far.
//   - Terminates SOLVED as soon as an iteration reports Optimal, FAILED
//     as soon as an iteration finds no plan (even if an earlier one did),
//     IN_PROGRESS (continues) otherwise.
//   - Statistics aggregation quirk, carried over verbatim from the
//     original rather than "fixed": each iteration's L1/L2/L3 estimation
//     counters are folded by taking abs(running cumulative total minus
//     that iteration's own fresh total) and adding THAT delta — not the
//     iteration's raw count and not a consecutive-iteration difference.
//     This can make the reported per-rank counters look like they
//     shrink between iterations; it is a recorded property of the
//     system being modeled, not a bug to paper over (see DESIGN.md).
//
// Error handling: Run returns ErrNilTask for setup mistakes and
// searchengine.ErrCritical if the iteration cap is exceeded.
package anytimebeauty
