package cubesolver

// Move is an element of the cube's move group: a corner permutation with
// per-slot twists and an edge permutation with per-slot flips, together with
// the quarter-turn sequence that produces it.
//
// Moves are immutable values. Every operation returns a new Move and never
// mutates its receiver or arguments, so Moves can be shared freely across
// goroutines.
//
// Internally perm[s] names the slot whose occupant this move sends to slot s,
// and twist[s] is the orientation change picked up at slot s. Corner twists
// are counted mod 3, edge flips mod 2.
type Move struct {
	cornerPerm  [8]uint8
	cornerTwist [8]uint8
	edgePerm    [12]uint8
	edgeFlip    [12]uint8
	turns       []Turn
}

// Identity returns the identity move: every slot fixed, no twists, empty
// turn sequence.
func Identity() Move {
	var m Move
	for i := range m.cornerPerm {
		m.cornerPerm[i] = uint8(i)
	}
	for i := range m.edgePerm {
		m.edgePerm[i] = uint8(i)
	}
	return m
}

// Compose returns the product a·b: the move equivalent to performing b first
// and then a. Turn sequences concatenate accordingly, so the result replays
// as b's turns followed by a's.
func (a Move) Compose(b Move) Move {
	var m Move
	for i := range m.cornerPerm {
		m.cornerPerm[i] = b.cornerPerm[a.cornerPerm[i]]
		m.cornerTwist[i] = (a.cornerTwist[i] + b.cornerTwist[a.cornerPerm[i]]) % 3
	}
	for i := range m.edgePerm {
		m.edgePerm[i] = b.edgePerm[a.edgePerm[i]]
		m.edgeFlip[i] = (a.edgeFlip[i] + b.edgeFlip[a.edgePerm[i]]) % 2
	}
	m.turns = make([]Turn, 0, len(a.turns)+len(b.turns))
	m.turns = append(m.turns, b.turns...)
	m.turns = append(m.turns, a.turns...)
	return m
}

// Inverse returns the move that undoes this one. The turn sequence is
// reversed with every turn inverted.
func (a Move) Inverse() Move {
	var m Move
	for i := range a.cornerPerm {
		m.cornerPerm[a.cornerPerm[i]] = uint8(i)
		m.cornerTwist[a.cornerPerm[i]] = (3 - a.cornerTwist[i]) % 3
	}
	for i := range a.edgePerm {
		m.edgePerm[a.edgePerm[i]] = uint8(i)
		m.edgeFlip[a.edgePerm[i]] = a.edgeFlip[i]
	}
	m.turns = make([]Turn, len(a.turns))
	for i, t := range a.turns {
		m.turns[len(a.turns)-1-i] = t.Inverse()
	}
	return m
}

// Power returns the move repeated n times. n may be zero (identity) or -1
// (inverse); any other negative exponent fails with ErrInvalidExponent.
func (a Move) Power(n int) (Move, error) {
	switch {
	case n < -1:
		return Move{}, ErrInvalidExponent
	case n == -1:
		return a.Inverse(), nil
	case n == 0:
		return Identity(), nil
	}
	m := a
	for i := 1; i < n; i++ {
		m = m.Compose(a)
	}
	return m, nil
}

// Conjugate returns g·a·g⁻¹: the effect of a relocated through g. Whatever a
// does to the slots g moves away from, the conjugate does to the slots g
// moves them to.
func Conjugate(a, g Move) Move {
	return g.Compose(a).Compose(g.Inverse())
}

// Commutator returns b⁻¹·a⁻¹·b·a. Commutators of near-disjoint moves are the
// building blocks of the exchange operators: everything outside the overlap
// of a and b cancels.
func Commutator(a, b Move) Move {
	return b.Inverse().Compose(a.Inverse()).Compose(b).Compose(a)
}

// Turns returns a copy of the quarter-turn sequence that produces this move.
func (a Move) Turns() []Turn {
	if len(a.turns) == 0 {
		return nil
	}
	out := make([]Turn, len(a.turns))
	copy(out, a.turns)
	return out
}

// Len reports the length of the quarter-turn sequence.
func (a Move) Len() int {
	return len(a.turns)
}

// IsIdentity reports whether the move leaves every slot and orientation
// unchanged, regardless of its turn sequence.
func (a Move) IsIdentity() bool {
	for i := range a.cornerPerm {
		if a.cornerPerm[i] != uint8(i) || a.cornerTwist[i] != 0 {
			return false
		}
	}
	for i := range a.edgePerm {
		if a.edgePerm[i] != uint8(i) || a.edgeFlip[i] != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two moves have the same effect on the cube. Turn
// sequences are not compared; F·F·F and F' are equal.
func (a Move) Equal(b Move) bool {
	return a.cornerPerm == b.cornerPerm && a.cornerTwist == b.cornerTwist &&
		a.edgePerm == b.edgePerm && a.edgeFlip == b.edgeFlip
}

// Notation returns the turn sequence in standard notation.
func (a Move) Notation() string {
	return FormatTurns(a.turns)
}

// String returns the notation string (alias for Notation).
func (a Move) String() string {
	return a.Notation()
}
