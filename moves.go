package cubesolver

// Predefined fundamental moves. Use these instead of building moves from
// turns manually.
//
// Example:
//
//	m := cubesolver.R.Compose(cubesolver.UPrime)
//	fmt.Println(m.Notation()) // "U' R"
//
// Corner slots are numbered 0-7 and edge slots 0-11; the tables below fix
// which slots each face cycles. Twists are counted mod 3 at the slot where a
// cubie lands, flips mod 2.
var (
	// Front face
	F      = quarterTurn(FaceF, [4]uint8{0, 2, 6, 4}, [4]uint8{2, 1, 2, 1}, [4]uint8{4, 1, 6, 9}, true)
	FPrime = F.Inverse()
	F2     = F.Compose(F)

	// Right face
	R      = quarterTurn(FaceR, [4]uint8{4, 6, 7, 5}, [4]uint8{2, 1, 2, 1}, [4]uint8{8, 9, 11, 10}, false)
	RPrime = R.Inverse()
	R2     = R.Compose(R)

	// Up face
	U      = quarterTurn(FaceU, [4]uint8{6, 2, 3, 7}, [4]uint8{0, 0, 0, 0}, [4]uint8{6, 3, 7, 11}, false)
	UPrime = U.Inverse()
	U2     = U.Compose(U)

	// Back face
	B      = quarterTurn(FaceB, [4]uint8{1, 5, 7, 3}, [4]uint8{1, 2, 1, 2}, [4]uint8{7, 2, 5, 10}, true)
	BPrime = B.Inverse()
	B2     = B.Compose(B)

	// Left face
	L      = quarterTurn(FaceL, [4]uint8{0, 1, 3, 2}, [4]uint8{1, 2, 1, 2}, [4]uint8{0, 2, 3, 1}, false)
	LPrime = L.Inverse()
	L2     = L.Compose(L)

	// Down face
	D      = quarterTurn(FaceD, [4]uint8{0, 4, 5, 1}, [4]uint8{0, 0, 0, 0}, [4]uint8{0, 4, 8, 5}, false)
	DPrime = D.Inverse()
	D2     = D.Compose(D)
)

// Sexy move: R U R' U', the commutator of R and U. Order 6.
var SexyMove = Commutator(R, U)

// Inverse sexy move: U R U' R'.
var InverseSexyMove = Commutator(U, R)

// T-perm: swaps two corners and two edges, order 2.
var TPerm = mustMove("R U R' U' R' F R2 U' R' U' R U R' F'")

// alphabet is the move vocabulary the connector search composes from:
// quarter and half turns of every face, in fixed order. Search results and
// therefore solutions are deterministic because this order never changes.
var alphabet = []Move{
	F, F2, FPrime,
	R, R2, RPrime,
	U, U2, UPrime,
	B, B2, BPrime,
	L, L2, LPrime,
	D, D2, DPrime,
}

// Exchange operators: fixed move sequences whose net effect is confined to a
// few slots. The reduction pipeline conjugates these through search results
// to repair one defect at a time.
var (
	// cornerSwitcher exchanges the occupants of corner slots 1 and 3 and
	// leaves every other corner where it is. Edges are disturbed; the edge
	// phases run later and repair them.
	cornerSwitcher = buildCornerSwitcher()

	// cornerFlipper keeps every corner in place and twists corner slot 0 by
	// two and corner slot 2 by one. Conjugating it moves those twists to
	// any pair of corner slots. Edges are disturbed, like cornerSwitcher.
	cornerFlipper = buildCornerFlipper()

	// edgeSwitchers cycle the occupants of their three-slot zone
	// (zone[1]→zone[0], zone[0]→zone[2], zone[2]→zone[1]) and leave every
	// corner and every other edge completely untouched, flips included.
	edgeSwitchers = []edgeSwitcher{
		{move: seq(U2, F, BPrime, L2, FPrime, B), zone: [3]uint8{0, 3, 11}},
		{move: seq(B2, R, LPrime, U2, RPrime, L), zone: [3]uint8{5, 6, 7}},
		{move: seq(U2, R, LPrime, F2, RPrime, L), zone: [3]uint8{4, 6, 7}},
		{move: seq(B2, D, UPrime, R2, DPrime, U), zone: [3]uint8{2, 9, 10}},
	}

	// edgeFlipper keeps every cubie in place and flips the edges in slots
	// 0 and 3.
	edgeFlipper = seq(
		BPrime, F, D, BPrime, F, R, BPrime, F, U2,
		FPrime, B, R, FPrime, B, D, FPrime, B, L2,
	)
)

// edgeSwitcher pairs an exchange operator with the slot zone it cycles.
type edgeSwitcher struct {
	move Move
	zone [3]uint8
}

// quarterTurn builds a clockwise face turn from its slot cycles. corners and
// edges list the affected slots in cycle order (each slot's occupant moves to
// the next listed slot); twists[i] is the twist picked up at slot corners[i].
// A face turn flips either all four of its edges or none of them.
func quarterTurn(face Face, corners [4]uint8, twists [4]uint8, edges [4]uint8, flips bool) Move {
	m := Identity()
	for i := 0; i < 4; i++ {
		m.cornerPerm[corners[(i+1)%4]] = corners[i]
		m.cornerTwist[corners[i]] = twists[i]
		m.edgePerm[edges[(i+1)%4]] = edges[i]
		if flips {
			m.edgeFlip[edges[i]] = 1
		}
	}
	m.turns = []Turn{{Face: face, Direction: Clockwise}}
	return m
}

// seq returns the product of its arguments: seq(a, b, c) = a·b·c, performed
// right to left, so the last argument is the first move made.
func seq(ms ...Move) Move {
	m := ms[0]
	for _, n := range ms[1:] {
		m = m.Compose(n)
	}
	return m
}

func buildCornerSwitcher() Move {
	x := F.Compose(Commutator(U, L))
	return seq(x, x, x)
}

func buildCornerFlipper() Move {
	x := FPrime.Compose(L)
	y := F.Compose(LPrime)
	return seq(x, x, x, y, y, y)
}

func mustMove(notation string) Move {
	turns, err := ParseTurns(notation)
	if err != nil {
		panic(err)
	}
	m, err := Replay(turns)
	if err != nil {
		panic(err)
	}
	return m
}
