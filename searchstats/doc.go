// Package searchstats counts what a search engine does: edges seen,
// states expanded/evaluated/estimated/reopened/generated/pruned/dead-ended,
// estimation calls broken down by ladder rank, and a snapshot of all of the
// above taken at the last f-value jump.
//
// Overview:
//
//	Statistics holds plain monotonic counters. ReportFValueProgress is
//	called with the f value of every expanded state; when it sees a new
//	maximum ("jump") it snapshots the running counters and logs a progress
//	line via log/slog — numbers up to the final jump are meaningful
//	independent of tie-breaking order, the rest are not.
//
// Logging:
//
//	Progress and checkpoint lines go through a *slog.Logger field
//	(defaulting to slog.Default()), not a third-party logger — see
//	DESIGN.md for why stdlib is the grounded choice here.
package searchstats
