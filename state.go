package cubesolver

import (
	"fmt"
	"strings"
)

// Configuration is a snapshot of the cube: which cubie occupies each slot and
// how it is oriented there. CornerPos[s] names the corner cubie sitting in
// corner slot s, CornerOri[s] its twist relative to home (0, 1 or 2).
// EdgePos and EdgeOri do the same for the twelve edge slots, with flips 0
// or 1.
type Configuration struct {
	CornerPos [8]uint8
	CornerOri [8]uint8
	EdgePos   [12]uint8
	EdgeOri   [12]uint8
}

// Solved returns the identity configuration: every cubie home and oriented.
func Solved() Configuration {
	var c Configuration
	for i := range c.CornerPos {
		c.CornerPos[i] = uint8(i)
	}
	for i := range c.EdgePos {
		c.EdgePos[i] = uint8(i)
	}
	return c
}

// Replay folds a turn sequence into the single Move it amounts to. The first
// turn in the slice is the first turn made. Fails with ErrUnknownTurn if a
// turn does not name one of the twelve quarter turns.
func Replay(turns []Turn) (Move, error) {
	m := Identity()
	for i, t := range turns {
		f, err := fundamental(t)
		if err != nil {
			return Move{}, fmt.Errorf("turn %d %q: %w", i, t.Notation(), err)
		}
		m = f.Compose(m)
	}
	return m, nil
}

// Apply replays a turn sequence on the solved cube and returns the resulting
// configuration.
func Apply(turns []Turn) (Configuration, error) {
	m, err := Replay(turns)
	if err != nil {
		return Configuration{}, err
	}
	return m.Configuration(), nil
}

// Configuration evaluates the move's action on the solved cube.
func (a Move) Configuration() Configuration {
	var c Configuration
	c.CornerPos = a.cornerPerm
	c.CornerOri = a.cornerTwist
	c.EdgePos = a.edgePerm
	c.EdgeOri = a.edgeFlip
	return c
}

// Transform returns the configuration after performing m on a cube currently
// in configuration c.
func (c Configuration) Transform(m Move) Configuration {
	var out Configuration
	for i := range out.CornerPos {
		out.CornerPos[i] = c.CornerPos[m.cornerPerm[i]]
		out.CornerOri[i] = (c.CornerOri[m.cornerPerm[i]] + m.cornerTwist[i]) % 3
	}
	for i := range out.EdgePos {
		out.EdgePos[i] = c.EdgePos[m.edgePerm[i]]
		out.EdgeOri[i] = (c.EdgeOri[m.edgePerm[i]] + m.edgeFlip[i]) % 2
	}
	return out
}

// IsSolved reports whether every cubie is home and oriented.
func (c Configuration) IsSolved() bool {
	return c == Solved()
}

// MisplacedCorners counts corner slots holding the wrong cubie.
func (c Configuration) MisplacedCorners() int {
	n := 0
	for i, p := range c.CornerPos {
		if p != uint8(i) {
			n++
		}
	}
	return n
}

// TwistedCorners counts corner slots whose cubie is twisted.
func (c Configuration) TwistedCorners() int {
	n := 0
	for _, o := range c.CornerOri {
		if o != 0 {
			n++
		}
	}
	return n
}

// MisplacedEdges counts edge slots holding the wrong cubie.
func (c Configuration) MisplacedEdges() int {
	n := 0
	for i, p := range c.EdgePos {
		if p != uint8(i) {
			n++
		}
	}
	return n
}

// FlippedEdges counts edge slots whose cubie is flipped.
func (c Configuration) FlippedEdges() int {
	n := 0
	for _, o := range c.EdgeOri {
		if o != 0 {
			n++
		}
	}
	return n
}

// String renders the four state vectors, one labeled row each.
func (c Configuration) String() string {
	var b strings.Builder
	writeRow := func(label string, vals []uint8) {
		b.WriteString(label)
		for i, v := range vals {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%2d", v)
		}
		b.WriteByte('\n')
	}
	writeRow("corner pos: ", c.CornerPos[:])
	writeRow("corner ori: ", c.CornerOri[:])
	writeRow("edge pos:   ", c.EdgePos[:])
	writeRow("edge ori:   ", c.EdgeOri[:])
	return b.String()
}

// fundamentals indexes the twelve quarter-turn moves by face and direction.
var fundamentals = [numFaces][numDirections]Move{
	FaceF: {Clockwise: F, CounterClockwise: FPrime},
	FaceR: {Clockwise: R, CounterClockwise: RPrime},
	FaceU: {Clockwise: U, CounterClockwise: UPrime},
	FaceB: {Clockwise: B, CounterClockwise: BPrime},
	FaceL: {Clockwise: L, CounterClockwise: LPrime},
	FaceD: {Clockwise: D, CounterClockwise: DPrime},
}

func fundamental(t Turn) (Move, error) {
	if t.Face >= numFaces || t.Direction >= numDirections {
		return Move{}, ErrUnknownTurn
	}
	return fundamentals[t.Face][t.Direction], nil
}
