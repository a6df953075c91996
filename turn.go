package cubesolver

import "strings"

// Face identifies one of the six rotatable faces.
type Face uint8

const (
	FaceF Face = iota // Front
	FaceR             // Right
	FaceU             // Up
	FaceB             // Back
	FaceL             // Left
	FaceD             // Down
	numFaces
)

// String returns the face letter in standard notation.
func (f Face) String() string {
	if f >= numFaces {
		return "?"
	}
	return string("FRUBLD"[f])
}

// Direction is the sense of a quarter turn.
type Direction uint8

const (
	Clockwise Direction = iota
	CounterClockwise
	numDirections
)

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// String returns "" for clockwise and "'" for counter-clockwise.
func (d Direction) String() string {
	if d == CounterClockwise {
		return "'"
	}
	return ""
}

// Turn is a single quarter turn of one face, the unit in which scrambles
// and solutions are expressed.
type Turn struct {
	Face      Face
	Direction Direction
}

// Notation returns the standard notation string for this turn.
// Examples: F, F', R, R'
func (t Turn) Notation() string {
	return t.Face.String() + t.Direction.String()
}

// Inverse returns the same turn in the opposite direction.
func (t Turn) Inverse() Turn {
	return Turn{Face: t.Face, Direction: t.Direction.Inverse()}
}

// String returns the notation string (alias for Notation).
func (t Turn) String() string {
	return t.Notation()
}

// ParseTurn parses a single quarter turn.
//
// Uppercase letters turn clockwise, lowercase counter-clockwise, so "F" and
// "f" are inverse turns. The prime suffix is accepted as an alternative:
// "F'" means the same as "f".
func ParseTurn(s string) (Turn, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Turn{}, ErrInvalidNotation
	}

	face, lower, ok := parseFaceLetter(s[0])
	if !ok {
		return Turn{}, ErrInvalidNotation
	}

	dir := Clockwise
	if lower {
		dir = CounterClockwise
	}
	if len(s) == 2 {
		if s[1] != '\'' {
			return Turn{}, ErrInvalidNotation
		}
		if lower {
			// "f'" is ambiguous; reject rather than guess.
			return Turn{}, ErrInvalidNotation
		}
		dir = CounterClockwise
	}

	return Turn{Face: face, Direction: dir}, nil
}

// ParseTurns parses a whitespace-separated sequence of turns.
//
// Half-turn notation is accepted and expanded, so "F2" contributes two
// clockwise F turns. Invalid symbols fail the whole parse.
func ParseTurns(s string) ([]Turn, error) {
	parts := strings.Fields(s)
	turns := make([]Turn, 0, len(parts))

	for _, part := range parts {
		if face, ok := parseHalfTurn(part); ok {
			t := Turn{Face: face, Direction: Clockwise}
			turns = append(turns, t, t)
			continue
		}
		t, err := ParseTurn(part)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}

	return turns, nil
}

// FormatTurns formats a slice of turns as a space-separated notation string.
func FormatTurns(turns []Turn) string {
	if len(turns) == 0 {
		return ""
	}

	parts := make([]string, len(turns))
	for i, t := range turns {
		parts[i] = t.Notation()
	}

	return strings.Join(parts, " ")
}

func parseFaceLetter(c byte) (face Face, lower bool, ok bool) {
	switch c {
	case 'F', 'f':
		face = FaceF
	case 'R', 'r':
		face = FaceR
	case 'U', 'u':
		face = FaceU
	case 'B', 'b':
		face = FaceB
	case 'L', 'l':
		face = FaceL
	case 'D', 'd':
		face = FaceD
	default:
		return 0, false, false
	}
	return face, c >= 'a', true
}

func parseHalfTurn(s string) (Face, bool) {
	if len(s) != 2 || s[1] != '2' {
		return 0, false
	}
	face, lower, ok := parseFaceLetter(s[0])
	if !ok || lower {
		// A half turn has no direction, so only the uppercase form exists.
		return 0, false
	}
	return face, true
}
