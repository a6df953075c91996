package cubesolver

import "fmt"

// Solver turns scrambles into verified solutions by four-phase reduction:
// place corners, orient corners, place edges, orient edges. Each phase walks
// the slots in ascending order and repairs one defect at a time by
// conjugating an exchange operator through a searched connector, so finished
// slots are never disturbed again.
//
// A Solver carries no mutable state and is safe for concurrent use.
type Solver struct {
	cornerDepth int
	edgeDepth   int
}

// NewSolver returns a Solver with the default search depth bounds, modified
// by any options.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		cornerDepth: DefaultCornerSearchDepth,
		edgeDepth:   DefaultEdgeSearchDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve solves a scramble with a default Solver. The returned turns,
// performed after the scramble, restore the solved state.
func Solve(scramble []Turn) ([]Turn, error) {
	return NewSolver().Solve(scramble)
}

// Solve returns a verified solution for the scramble. The empty scramble
// yields the empty solution. Solutions favor correctness over brevity; a
// 200-turn scramble typically takes a few hundred turns to undo.
func (s *Solver) Solve(scramble []Turn) ([]Turn, error) {
	sol, err := s.SolveDetailed(scramble)
	if err != nil {
		return nil, err
	}
	return sol.Turns, nil
}

// SolveDetailed is Solve with the per-phase breakdown attached.
func (s *Solver) SolveDetailed(scramble []Turn) (*Solution, error) {
	start, err := Replay(scramble)
	if err != nil {
		return nil, err
	}

	cfg := start.Configuration()
	total := Identity()
	sol := &Solution{}

	phases := []struct {
		phase Phase
		run   func(*Configuration) (Move, int, error)
	}{
		{PhaseCornerPlacement, s.placeCorners},
		{PhaseCornerOrientation, s.orientCorners},
		{PhaseEdgePlacement, s.placeEdges},
		{PhaseEdgeOrientation, s.orientEdges},
	}
	for i, p := range phases {
		m, repairs, err := p.run(&cfg)
		if err != nil {
			return nil, err
		}
		total = m.Compose(total)
		sol.Phases[i] = PhaseResult{Phase: p.phase, Repairs: repairs, Turns: m.Len()}
	}

	// The solution composed with the scramble must be the identity.
	if !total.Compose(start).IsIdentity() {
		return nil, fmt.Errorf("post-solve verification: %w", ErrSolveFailed)
	}

	sol.Turns = total.Turns()
	return sol, nil
}

// placeCorners is the first phase: walk corner slots 0-7 and swap each
// slot's rightful cubie in from wherever it sits. The connector carries the
// switcher's fixed zone (slots 1 and 3) onto the defect pair; either
// assignment works because a swap is symmetric.
func (s *Solver) placeCorners(cfg *Configuration) (Move, int, error) {
	res := Identity()
	repairs := 0
	for i := uint8(0); i < 8; i++ {
		if cfg.CornerPos[i] == i {
			continue
		}
		j := locate(cfg.CornerPos[:], i)
		conn, err := searchCornerPair(1, 3, i, j, false, s.cornerDepth)
		if err != nil {
			return Move{}, 0, fmt.Errorf("corner placement, slot %d: %w", i, err)
		}
		fix := Conjugate(cornerSwitcher, conn)
		*cfg = cfg.Transform(fix)
		res = fix.Compose(res)
		repairs++
	}
	return res, repairs, nil
}

// orientCorners is the second phase. The conjugated flipper adds one twist
// at the defect slot and dumps the balancing junk twist on slot 0, so a
// cubie twisted by 2 needs one application and a cubie twisted by 1 needs
// two. Slot 0 itself is skipped: once slots 1-7 are clean it must be clean
// too, because total corner twist is invariant mod 3.
func (s *Solver) orientCorners(cfg *Configuration) (Move, int, error) {
	res := Identity()
	repairs := 0
	for i := uint8(1); i < 8; i++ {
		twist := cfg.CornerOri[i]
		if twist == 0 {
			continue
		}
		conn, err := searchCornerPair(0, 2, 0, i, true, s.cornerDepth)
		if err != nil {
			return Move{}, 0, fmt.Errorf("corner orientation, slot %d: %w", i, err)
		}
		fix := Conjugate(cornerFlipper, conn)
		if twist == 1 {
			fix = fix.Compose(fix)
		}
		*cfg = cfg.Transform(fix)
		res = fix.Compose(res)
		repairs++
	}
	return res, repairs, nil
}

// placeEdges is the third phase: a conjugated three-cycle pulls the rightful
// cubie into the defect slot and pushes the displaced one into unfinished
// territory. The four switchers cover different zones; the first one whose
// connector search succeeds does the repair. Slots 10 and 11 are never
// visited: with all corners home and edges 0-9 placed, permutation parity
// pins the last two edges.
func (s *Solver) placeEdges(cfg *Configuration) (Move, int, error) {
	res := Identity()
	repairs := 0
	for i := uint8(0); i < 10; i++ {
		if cfg.EdgePos[i] == i {
			continue
		}
		j := locate(cfg.EdgePos[:], i)
		fixed := false
		for _, sw := range edgeSwitchers {
			conn, err := searchEdgeTriple(sw.zone[0], sw.zone[1], sw.zone[2], i, j, s.edgeDepth)
			if err != nil {
				continue // zone out of reach at this depth; try the next
			}
			fix := Conjugate(sw.move, conn)
			*cfg = cfg.Transform(fix)
			res = fix.Compose(res)
			repairs++
			fixed = true
			break
		}
		if !fixed {
			return Move{}, 0, fmt.Errorf("edge placement, slot %d: no switcher reaches the defect: %w", i, ErrSolveFailed)
		}
	}
	return res, repairs, nil
}

// orientEdges is the last phase, a mod-2 echo of orientCorners: the
// conjugated flipper unflips the defect slot and parks the balancing flip on
// slot 0, which self-corrects once slots 1-11 are clean.
func (s *Solver) orientEdges(cfg *Configuration) (Move, int, error) {
	res := Identity()
	repairs := 0
	for i := uint8(1); i < 12; i++ {
		if cfg.EdgeOri[i] == 0 {
			continue
		}
		conn, err := searchEdgePair(0, 3, 0, i, s.edgeDepth)
		if err != nil {
			return Move{}, 0, fmt.Errorf("edge orientation, slot %d: %w", i, err)
		}
		fix := Conjugate(edgeFlipper, conn)
		*cfg = cfg.Transform(fix)
		res = fix.Compose(res)
		repairs++
	}
	return res, repairs, nil
}

// locate returns the slot beyond i currently holding cubie i. The pipeline
// only calls it when slot i is a defect, so the cubie must sit further along.
func locate(pos []uint8, i uint8) uint8 {
	for k := i + 1; k < uint8(len(pos)); k++ {
		if pos[k] == i {
			return k
		}
	}
	return i
}
