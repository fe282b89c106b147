package searchstats

import "log/slog"

// Statistics counts the shape of one search run. The zero value is ready
// to use (all counters start at zero, LastJumpFValue effectively "none").
type Statistics struct {
	Logger *slog.Logger

	Edges            int
	ExpandedStates   int
	EvaluatedStates  int
	PrunedStates     int
	EstimatedEdges   int
	Evaluations      int
	Estimations      int
	L1Estimations    int
	L2Estimations    int
	L3Estimations    int
	GeneratedStates  int
	ReopenedStates   int
	DeadEndStates    int
	GeneratedOps     int

	lastJumpFValue          int
	lastJumpSet             bool
	LastJumpExpandedStates  int
	LastJumpReopenedStates  int
	LastJumpEvaluatedStates int
	LastJumpEstimatedEdges  int
	LastJumpGeneratedStates int
}

// New returns a ready-to-use Statistics using slog.Default() for progress
// lines.
func New() *Statistics {
	return &Statistics{Logger: slog.Default()}
}

func (s *Statistics) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// IncEdges etc. match the original's inc_* counters one-for-one.
func (s *Statistics) IncEdges(n int)           { s.Edges += n }
func (s *Statistics) IncExpanded(n int)        { s.ExpandedStates += n }
func (s *Statistics) IncEvaluatedStates(n int) { s.EvaluatedStates += n }
func (s *Statistics) IncPrunedStates(n int)    { s.PrunedStates += n }
func (s *Statistics) IncEstimatedEdges(n int)  { s.EstimatedEdges += n }
func (s *Statistics) IncGenerated(n int)       { s.GeneratedStates += n }
func (s *Statistics) IncReopened(n int)        { s.ReopenedStates += n }
func (s *Statistics) IncGeneratedOps(n int)    { s.GeneratedOps += n }
func (s *Statistics) IncEvaluations(n int)     { s.Evaluations += n }
func (s *Statistics) IncEstimations(n int)     { s.Estimations += n }
func (s *Statistics) IncL1Estimations(n int)   { s.L1Estimations += n }
func (s *Statistics) IncL2Estimations(n int)   { s.L2Estimations += n }
func (s *Statistics) IncL3Estimations(n int)   { s.L3Estimations += n }
func (s *Statistics) IncDeadEnds(n int)        { s.DeadEndStates += n }

// ReportFValueProgress records f as the newest expanded f value and, if it
// is a new maximum ("jump"), snapshots the running counters and logs a
// progress line.
func (s *Statistics) ReportFValueProgress(f int) {
	if s.lastJumpSet && f <= s.lastJumpFValue {
		return
	}
	s.lastJumpFValue = f
	s.lastJumpSet = true
	s.logger().Info("f-value jump",
		"f", f,
		"evaluated", s.EvaluatedStates,
		"expanded", s.ExpandedStates,
		"estimated", s.EstimatedEdges,
		"reopened", s.ReopenedStates,
	)
	s.LastJumpExpandedStates = s.ExpandedStates
	s.LastJumpReopenedStates = s.ReopenedStates
	s.LastJumpEvaluatedStates = s.EvaluatedStates
	s.LastJumpEstimatedEdges = s.EstimatedEdges
	s.LastJumpGeneratedStates = s.GeneratedStates
}

// PrintCheckpointLine logs a progress line tagged with the current g
// bound, independent of f-jump tracking.
func (s *Statistics) PrintCheckpointLine(g int) {
	s.logger().Info("checkpoint",
		"g", g,
		"evaluated", s.EvaluatedStates,
		"expanded", s.ExpandedStates,
		"estimated", s.EstimatedEdges,
		"reopened", s.ReopenedStates,
	)
}

// LastJumpFValue returns the f value of the last jump and whether any
// jump has occurred yet.
func (s *Statistics) LastJumpFValue() (int, bool) {
	return s.lastJumpFValue, s.lastJumpSet
}
