package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver_library"
)

var (
	scrambleTurns int
	scrambleSeed  uint64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Print a random scramble in face notation. With --seed the sequence is
reproducible, which is handy for comparing solver settings on the same input.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleTurns, "turns", 25, "Number of quarter turns")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed (0 uses a nondeterministic source)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleTurns < 1 {
		return fmt.Errorf("--turns must be at least 1")
	}

	var turns []cubesolver.Turn
	if scrambleSeed != 0 {
		turns = cubesolver.ScrambleSeeded(scrambleTurns, scrambleSeed)
	} else {
		turns = cubesolver.Scramble(scrambleTurns)
	}

	fmt.Println(cubesolver.FormatTurns(turns))
	return nil
}
