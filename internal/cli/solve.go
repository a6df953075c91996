package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_solver_library"
	"github.com/SeamusWaldron/gocube_solver_library/internal/storage"
)

var (
	solveRandom   int
	solveSeed     uint64
	solveNoRecord bool
	solvePlay     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble...]",
	Short: "Solve a scrambled cube",
	Long: `Solve a scramble given in face notation and print the solution with its
per-phase breakdown. Uppercase letters are clockwise quarter turns, a trailing
apostrophe marks counterclockwise, and F2 means two quarter turns.

Examples:
  cubesolver solve "R U R' U'"
  cubesolver solve R U2 F D
  cubesolver solve --random 25
  cubesolver solve --random 25 --seed 42`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveRandom, "random", 0, "Solve a random scramble of N turns instead of reading arguments")
	solveCmd.Flags().Uint64Var(&solveSeed, "seed", 0, "Seed for --random (0 uses a nondeterministic source)")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Do not store the solve in the database")
	solveCmd.Flags().BoolVar(&solvePlay, "play", false, "Replay the solution turn by turn after solving")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble, err := scrambleFromArgs(args)
	if err != nil {
		return err
	}
	if len(scramble) == 0 {
		return fmt.Errorf("provide a scramble in face notation or use --random")
	}

	solver := newSolver()
	start := time.Now()
	solution, err := solver.SolveDetailed(scramble)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(start)

	logger.Debug("solve finished",
		zap.Int("scramble_len", len(scramble)),
		zap.Int("solution_len", solution.Len()),
		zap.Duration("elapsed", elapsed))

	fmt.Println("Scramble")
	fmt.Println("--------")
	printWrapped(cubesolver.FormatTurns(scramble))
	fmt.Println()

	fmt.Println("Solution")
	fmt.Println("--------")
	printWrapped(solution.Notation())
	fmt.Println()

	fmt.Println("Phases")
	fmt.Println("------")
	for _, p := range solution.Phases {
		fmt.Printf("%-20s  %3d repairs  %5d turns\n", p.Phase.DisplayName(), p.Repairs, p.Turns)
	}
	fmt.Println()

	fmt.Printf("Total: %d turns in %s\n", solution.Len(), formatDuration(elapsed))

	solve := newSolveRecord(scramble, solution, storage.SourceCLI, elapsed)
	if !solveNoRecord {
		if err := recordSolve(solve); err != nil {
			return err
		}
	}

	if solvePlay {
		model, err := newPlayModel(solve, 1.0, false)
		if err != nil {
			return err
		}
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("playback error: %w", err)
		}
	}

	return nil
}

// scrambleFromArgs reads the scramble from --random or the argument list.
// Arguments are joined so both a single quoted string and bare tokens work.
func scrambleFromArgs(args []string) ([]cubesolver.Turn, error) {
	if solveRandom > 0 {
		if solveSeed != 0 {
			return cubesolver.ScrambleSeeded(solveRandom, solveSeed), nil
		}
		return cubesolver.Scramble(solveRandom), nil
	}

	notation := strings.Join(args, " ")
	if strings.TrimSpace(notation) == "" {
		return nil, nil
	}

	scramble, err := cubesolver.ParseTurns(notation)
	if err != nil {
		return nil, fmt.Errorf("invalid scramble: %w", err)
	}
	return scramble, nil
}

// newSolveRecord packs a solution into a storage row.
func newSolveRecord(scramble []cubesolver.Turn, solution *cubesolver.Solution, source string, elapsed time.Duration) *storage.Solve {
	return &storage.Solve{
		CreatedAt:   time.Now().UTC(),
		Source:      source,
		Scramble:    cubesolver.FormatTurns(scramble),
		Solution:    solution.Notation(),
		ScrambleLen: len(scramble),
		SolutionLen: solution.Len(),
		DurationMs:  elapsed.Milliseconds(),

		CornerPlacementTurns:   solution.Phases[0].Turns,
		CornerOrientationTurns: solution.Phases[1].Turns,
		EdgePlacementTurns:     solution.Phases[2].Turns,
		EdgeOrientationTurns:   solution.Phases[3].Turns,
	}
}

func recordSolve(solve *storage.Solve) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	if err := repo.Create(solve); err != nil {
		return fmt.Errorf("failed to record solve: %w", err)
	}

	fmt.Printf("Recorded solve %s\n", solve.SolveID)
	return nil
}

// printWrapped prints notation in lines of roughly 60 characters.
func printWrapped(notation string) {
	for _, line := range wrapNotation(notation, 60) {
		fmt.Println(line)
	}
}

func wrapNotation(notation string, width int) []string {
	var lines []string
	var line string
	for _, token := range strings.Fields(notation) {
		switch {
		case line == "":
			line = token
		case len(line)+len(token)+1 > width:
			lines = append(lines, line)
			line = token
		default:
			line += " " + token
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
