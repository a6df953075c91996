package cubesolver

// Phase identifies one stage of the reduction pipeline. Phases run in order,
// each shrinking the set of defects the next one is allowed to touch.
type Phase int

const (
	// PhaseCornerPlacement carries every corner cubie to its home slot.
	PhaseCornerPlacement Phase = iota

	// PhaseCornerOrientation untwists the corners without moving them.
	PhaseCornerOrientation

	// PhaseEdgePlacement carries every edge cubie to its home slot while
	// leaving the finished corners untouched.
	PhaseEdgePlacement

	// PhaseEdgeOrientation unflips the edges, completing the solve.
	PhaseEdgeOrientation
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCornerPlacement:
		return "corner_placement"
	case PhaseCornerOrientation:
		return "corner_orientation"
	case PhaseEdgePlacement:
		return "edge_placement"
	case PhaseEdgeOrientation:
		return "edge_orientation"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseCornerPlacement:
		return "Corner Placement"
	case PhaseCornerOrientation:
		return "Corner Orientation"
	case PhaseEdgePlacement:
		return "Edge Placement"
	case PhaseEdgeOrientation:
		return "Edge Orientation"
	default:
		return "Unknown"
	}
}

// PhaseResult summarizes one phase of a solve: how many defects it repaired
// and how many quarter turns those repairs cost.
type PhaseResult struct {
	Phase   Phase
	Repairs int
	Turns   int
}

// Solution is a verified solve: the full quarter-turn sequence together with
// the per-phase breakdown.
type Solution struct {
	Turns  []Turn
	Phases [4]PhaseResult
}

// Len reports the solution length in quarter turns.
func (s *Solution) Len() int {
	return len(s.Turns)
}

// Notation returns the solution in standard notation.
func (s *Solution) Notation() string {
	return FormatTurns(s.Turns)
}
