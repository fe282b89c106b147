// Package searchtask defines the boundary the search engines are built
// against: the problem a host application hands to a search engine.
//
// Overview:
//
//	Task is the host's state-space problem: it enumerates a state's
//	applicable operators, applies an operator to produce a successor state,
//	reports an operator's nominal cost, and decides whether a state is a
//	goal. None of this is designed here — it is the contract every search
//	engine in this module is written against, mirroring how the teacher's
//	algorithms are written against core.Graph without owning it.
//
// Key features:
//
//	  - StateID is an opaque comparable key so SearchSpace can index states
//	    in a plain map without knowing anything about State's shape.
//	  - Costs are plain ints (not floats) throughout, matching the
//	    estimation package's Info/Estimator contracts.
package searchtask
