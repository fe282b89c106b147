// Package searchconfig loads the four engines' scalar tuning knobs from
// a TOML file, the way BurntSushi/toml is referenced (via NikeGunn-tutu's
// go.mod and its config.toml convention) as the pack's TOML library.
//
// Overview:
//
// Config mirrors the Options tables every engine package documents in
// its own doc.go: reopen_closed, bound, l_est/l_prune, seed,
// factor_first/second/third, epsilon, initial_epsilon, shrinkage_factor,
// threshold, max_iter, end_of_search_estimations. Only scalar knobs are
// loaded from TOML — Evaluator, OpenList, PruningMethod and Stats stay
// Go interfaces the caller wires programmatically, since a config file
// has no way to name a Go value.
//
// Error handling: Load returns BurntSushi/toml's decode error unwrapped
// on a malformed file; a missing file surfaces the underlying os error.
package searchconfig
