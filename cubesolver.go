// Package cubesolver solves the 3x3x3 Rubik's cube by group algebra alone:
// no pattern tables, no facelet colors, just permutations, twists and the
// conjugation trick. Given any scramble it produces a verified quarter-turn
// solution.
//
// # Features
//
//   - Immutable move algebra: compose, inverse, power, conjugate, commutator
//   - Cubie-level cube state with twist and flip tracking
//   - Four-phase reduction solver with bounded connector search
//   - Deterministic solutions (same scramble, same solution)
//   - Scramble generation and notation parsing
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	scramble := cubesolver.Scramble(200)
//	solution, err := cubesolver.Solve(scramble)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cubesolver.FormatTurns(solution))
//
// Or solve a scramble written in standard notation:
//
//	turns, _ := cubesolver.ParseTurns("R U R' U' F2 D")
//	solution, _ := cubesolver.Solve(turns)
//
// Solutions favor correctness over brevity: a long scramble earns a solution
// of several hundred quarter turns, every one of them verified by replay
// before the solver returns.
//
// # Move Algebra
//
// A Move is an element of the cube group: where each cubie goes and how it
// twists on the way, plus the turn sequence producing it. Moves compose
// right-to-left like functions:
//
//	m := cubesolver.R.Compose(cubesolver.U) // U first, then R
//	m.Inverse()                             // undoes m
//	cubesolver.Conjugate(a, g)              // g a g', a's effect relocated by g
//	cubesolver.Commutator(a, b)             // b' a' b a
//
// The state a move produces is read off with Configuration:
//
//	cfg := m.Configuration()
//	fmt.Println(cfg.IsSolved())
//
// # Predefined Moves
//
// The package provides the fundamental face turns as constants:
//
//	cubesolver.R      // Right clockwise
//	cubesolver.RPrime // Right counter-clockwise
//	cubesolver.R2     // Right 180
//	// ... and similarly for L, U, D, F, B
//
// # Solving Phases
//
// The solver reduces a scramble in four phases, each repairing one kind of
// defect without disturbing the work of earlier phases:
//
//   - PhaseCornerPlacement: every corner cubie to its home slot
//   - PhaseCornerOrientation: corner twists cleared
//   - PhaseEdgePlacement: every edge cubie to its home slot
//   - PhaseEdgeOrientation: edge flips cleared
//
// SolveDetailed reports the per-phase turn counts alongside the solution.
package cubesolver
