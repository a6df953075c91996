package cubesolver

// Connector search: find a short product of alphabet moves carrying chosen
// cubies into chosen slots. Used by every pipeline phase to line defects up
// with an exchange operator's fixed zone.
//
// The search deepens iteratively. Depth-1 candidates are the identity
// followed by the alphabet in its fixed order; each further depth extends
// every candidate by every alphabet move, skipping extensions that turn the
// face a candidate just turned. Candidates are scanned in generation order
// and the first hit wins, so results are deterministic and the identity is
// preferred whenever the cubies are already in place.
//
// The frontier grows by roughly the alphabet size each depth (about 15x
// after pruning), which is why depth stays bounded: corner searches default
// to 5, edge searches to 3.

// searchConnector runs the deepening loop. Both candidate buffers are reused
// across depths. Returns ErrSearchExhausted when no candidate within
// maxDepth satisfies the goal.
func searchConnector(maxDepth int, goal func(*Move) bool) (Move, error) {
	cur := make([]Move, 0, 1+len(alphabet))
	cur = append(cur, Identity())
	cur = append(cur, alphabet...)
	var next []Move

	for depth := 1; ; depth++ {
		for i := range cur {
			if goal(&cur[i]) {
				return cur[i], nil
			}
		}
		if depth >= maxDepth {
			return Move{}, ErrSearchExhausted
		}

		next = next[:0]
		for _, m := range alphabet {
			face := m.turns[0].Face
			for i := range cur {
				g := &cur[i]
				if len(g.turns) == 0 {
					// The identity seed stops extending after depth 1;
					// shorter products already appeared at earlier depths.
					continue
				}
				if g.turns[len(g.turns)-1].Face == face {
					continue
				}
				next = append(next, m.Compose(*g))
			}
		}
		cur, next = next, cur
	}
}

// searchCornerPair finds a move placing corner cubies c1 and c2 into corner
// slots s1 and s2. The permissive form accepts either assignment of the two
// cubies to the two slots; the exact form requires c1 in s1 and c2 in s2.
func searchCornerPair(c1, c2, s1, s2 uint8, exact bool, maxDepth int) (Move, error) {
	if exact {
		return searchConnector(maxDepth, func(m *Move) bool {
			return m.cornerPerm[s1] == c1 && m.cornerPerm[s2] == c2
		})
	}
	return searchConnector(maxDepth, func(m *Move) bool {
		return (m.cornerPerm[s1] == c1 && m.cornerPerm[s2] == c2) ||
			(m.cornerPerm[s1] == c2 && m.cornerPerm[s2] == c1)
	})
}

// searchEdgePair finds a move placing edge cubies c1 and c2 exactly into
// edge slots s1 and s2.
func searchEdgePair(c1, c2, s1, s2 uint8, maxDepth int) (Move, error) {
	return searchConnector(maxDepth, func(m *Move) bool {
		return m.edgePerm[s1] == c1 && m.edgePerm[s2] == c2
	})
}

// searchEdgeTriple finds a move placing edge cubies c1 and c2 exactly into
// slots s1 and s2 while keeping cubie c3 somewhere in a slot beyond s1.
// The pipeline uses it to land an exchange zone on a defect without letting
// the third zone member fall back into already-solved territory.
func searchEdgeTriple(c1, c2, c3, s1, s2 uint8, maxDepth int) (Move, error) {
	return searchConnector(maxDepth, func(m *Move) bool {
		if m.edgePerm[s1] != c1 || m.edgePerm[s2] != c2 {
			return false
		}
		for s := s1 + 1; s < uint8(len(m.edgePerm)); s++ {
			if m.edgePerm[s] == c3 {
				return true
			}
		}
		return false
	})
}
