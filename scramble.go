package cubesolver

import "math/rand/v2"

// Scramble returns n quarter turns drawn uniformly from the twelve-turn
// alphabet. 200 turns thoroughly mixes the cube.
func Scramble(n int) []Turn {
	return scramble(n, rand.IntN)
}

// ScrambleSeeded is Scramble with a deterministic source, for reproducible
// scrambles.
func ScrambleSeeded(n int, seed uint64) []Turn {
	rng := rand.New(rand.NewPCG(seed, 0))
	return scramble(n, rng.IntN)
}

func scramble(n int, intn func(int) int) []Turn {
	if n <= 0 {
		return nil
	}
	turns := make([]Turn, n)
	for i := range turns {
		k := intn(int(numFaces) * int(numDirections))
		turns[i] = Turn{
			Face:      Face(k / int(numDirections)),
			Direction: Direction(k % int(numDirections)),
		}
	}
	return turns
}
