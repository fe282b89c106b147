// Package planio persists a finished search engine's Plan the way
// spec.md's "host plan manager" is described: each save is tagged with
// a run identifier and written as a JSON document to a directory the
// caller configures.
//
// Overview:
//
// Manager.Save takes a searchengine.Plan plus the goal cost it
// achieved and writes one JSON file per call, named by a fresh
// google/uuid run identifier. It does not persist node metadata or
// open/closed search-space state — only the finished, already-extracted
// plan — matching spec.md's Non-goal on persistent search state, which
// is about the search's internal bookkeeping, not about the plan
// manager the spec explicitly delegates to the host.
//
// Error handling: Save returns the underlying os/encoding errors
// unwrapped; callers that need to distinguish a write failure from a
// marshal failure can use errors.As against *os.PathError or
// *json.MarshalerError.
package planio
