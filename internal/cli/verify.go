package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver_library"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <scramble> <solution>",
	Short: "Check that a solution solves a scramble",
	Long: `Replay a scramble followed by a candidate solution and report whether the
cube ends up solved. Both sequences are given in face notation.

Example:
  cubesolver verify "F" "F'"`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	scramble, err := cubesolver.ParseTurns(args[0])
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}
	solution, err := cubesolver.ParseTurns(args[1])
	if err != nil {
		return fmt.Errorf("invalid solution: %w", err)
	}

	state, err := cubesolver.Apply(append(scramble, solution...))
	if err != nil {
		return err
	}

	if state.IsSolved() {
		fmt.Printf("OK: %d scramble turns undone by %d solution turns\n", len(scramble), len(solution))
		return nil
	}

	fmt.Println("FAILED: cube is not solved after the solution")
	fmt.Printf("  misplaced corners: %d\n", state.MisplacedCorners())
	fmt.Printf("  twisted corners:   %d\n", state.TwistedCorners())
	fmt.Printf("  misplaced edges:   %d\n", state.MisplacedEdges())
	fmt.Printf("  flipped edges:     %d\n", state.FlippedEdges())
	return fmt.Errorf("verification failed")
}
