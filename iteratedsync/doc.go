// Package iteratedsync implements the IteratedSync driver: it repeats
// synchronic searches over the same task, tightening the child's
// target epsilon each iteration via an overshoot/shrinkage controller,
// until an epsilon-optimal plan is certified, the search space is
// genuinely exhausted, or no further tightening clears the configured
// improvement threshold.
//
// Overview:
//
// Each iteration reconstructs a fresh synchronic.Run call (the
// original re-parses and reconstructs its child engine from a config
// tree every iteration rather than resetting one in place — carried
// here as a fresh Run call per iteration, since synchronic.Run already
// owns a throwaway searchspace.Space per call). The controller tracks
// the best uncertainty ratio seen (best_uncertainty_bound) and an
// overshoot ratio describing how far the previous iteration's actual
// ratio missed its target; overshoot feeds directly into next
// iteration's target via a shrinkage factor. Once a new target would
// not improve on the current one by more than Options.Threshold, the
// controller gives up tightening and makes one final iteration at
// target 1 (exact cost) before terminating.
//
// Key features:
//
//   - Saves the plan only when an iteration beats the best ratio found
//     so far.
//   - Reports SOLVED once best_uncertainty_bound clears Options.Epsilon,
//     IN_PROGRESS otherwise (iterations continue), FAILED if no
//     iteration ever finds a plan.
//   - Folds each iteration's (freshly-zeroed) child statistics into a
//     running cumulative total by plain addition — unlike anytimebeauty,
//     which folds its L1/L2/L3 estimation counters by an abs-diff rule.
//
// Error handling: Run returns ErrNilTask for setup mistakes; exhaustion
// without ever solving reports Status Failed, never an error.
package iteratedsync
