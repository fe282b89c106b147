package searchtask

// StateID is an opaque identifier a host assigns to a State. Search-space
// bookkeeping indexes nodes by StateID alone, the same way core.Vertex is
// indexed by a plain string ID rather than by structural equality.
type StateID string

// OperatorID identifies one operator a Task can apply from a given state.
type OperatorID string

// State is an opaque state handle. The search engines never inspect it;
// they pass it back to Task and to Evaluator implementations untouched.
type State interface {
	ID() StateID
}

// Operator is one action a Task can apply from a given state.
type Operator interface {
	ID() OperatorID
	// Cost is the operator's nominal, pre-adjustment cost.
	Cost() int
}

// Task is the state-space problem a search engine explores. It is a
// boundary collaborator: this module consumes Task, it never constructs
// the host's real task implementations.
type Task interface {
	// InitialState returns the state the search starts from.
	InitialState() State

	// Operators lists the operators applicable from state.
	Operators(state State) []Operator

	// Apply returns the successor state reached by applying op from state.
	Apply(state State, op Operator) State

	// IsGoal reports whether state satisfies the task's goal test.
	IsGoal(state State) bool
}
