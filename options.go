package cubesolver

// Default connector search depth bounds. Corner searches range wider because
// the corner phases have only one exchange zone to aim for; the edge phases
// pick from four zones and get away with shallower searches.
const (
	DefaultCornerSearchDepth = 5
	DefaultEdgeSearchDepth   = 3
)

// Option configures a Solver.
type Option func(*Solver)

// WithCornerSearchDepth bounds the connector search used by the corner
// phases. Depths below 1 are ignored. Raising the bound never changes a
// solution that was already found at a shallower depth; lowering it can make
// solves fail with ErrSearchExhausted.
func WithCornerSearchDepth(depth int) Option {
	return func(s *Solver) {
		if depth >= 1 {
			s.cornerDepth = depth
		}
	}
}

// WithEdgeSearchDepth bounds the connector search used by the edge phases.
// Depths below 1 are ignored.
func WithEdgeSearchDepth(depth int) Option {
	return func(s *Solver) {
		if depth >= 1 {
			s.edgeDepth = depth
		}
	}
}
