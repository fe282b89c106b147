// Package searchengine holds the surface shared by every concrete search
// engine and driver in this module: run status, the two engine-level
// exit conditions, cost adjustment, bound checking, and plan extraction.
//
// Overview:
//
//	None of Beauty, SynchronicEstimationSearch, IteratedSync or
//	AnytimeBeauty repeats this plumbing — they call its helpers. Status mirrors the spec's SOLVED/FAILED/IN_PROGRESS
//	three-way outcome; ErrInput and ErrCritical are the two taxonomy
//	classes that require stopping a run rather than reporting FAILED.
package searchengine
