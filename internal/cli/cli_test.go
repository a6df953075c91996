package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_solver_library"
	"github.com/SeamusWaldron/gocube_solver_library/internal/config"
	"github.com/SeamusWaldron/gocube_solver_library/internal/storage"
)

// setupCLITest points the global logger, config, and database at test
// fixtures, restoring the globals afterwards.
func setupCLITest(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	dbPath = filepath.Join(t.TempDir(), "solves.db")
	t.Cleanup(func() {
		logger = nil
		cfg = nil
		dbPath = ""
	})
}

func TestRunSolve_RecordsToDatabase(t *testing.T) {
	setupCLITest(t)
	solveRandom = 0
	solveNoRecord = false

	cmd := &cobra.Command{}
	if err := runSolve(cmd, []string{"R", "U", "R'", "U'"}); err != nil {
		t.Fatalf("runSolve failed: %v", err)
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	solve, err := storage.NewSolveRepository(db).GetLast()
	if err != nil {
		t.Fatalf("GetLast failed: %v", err)
	}
	if solve == nil {
		t.Fatal("expected a recorded solve")
	}

	if solve.Scramble != "R U R' U'" {
		t.Errorf("expected scramble %q, got %q", "R U R' U'", solve.Scramble)
	}
	if solve.Source != storage.SourceCLI {
		t.Errorf("expected source %q, got %q", storage.SourceCLI, solve.Source)
	}
	if solve.SolutionLen == 0 {
		t.Error("expected a non-empty solution")
	}

	// The stored solution must undo the stored scramble.
	scramble, err := cubesolver.ParseTurns(solve.Scramble)
	if err != nil {
		t.Fatalf("stored scramble is invalid: %v", err)
	}
	solution, err := cubesolver.ParseTurns(solve.Solution)
	if err != nil {
		t.Fatalf("stored solution is invalid: %v", err)
	}
	state, err := cubesolver.Apply(append(scramble, solution...))
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !state.IsSolved() {
		t.Error("stored solution does not solve the stored scramble")
	}
}

func TestRunSolve_NoRecordSkipsDatabase(t *testing.T) {
	setupCLITest(t)
	solveRandom = 0
	solveNoRecord = true
	defer func() { solveNoRecord = false }()

	cmd := &cobra.Command{}
	if err := runSolve(cmd, []string{"F"}); err != nil {
		t.Fatalf("runSolve failed: %v", err)
	}

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Error("expected no database file to be created")
	}
}

func TestRunSolve_InvalidInput(t *testing.T) {
	setupCLITest(t)
	solveRandom = 0

	cmd := &cobra.Command{}
	if err := runSolve(cmd, nil); err == nil {
		t.Error("expected error for missing scramble")
	}
	if err := runSolve(cmd, []string{"R3"}); err == nil {
		t.Error("expected error for invalid notation")
	}
}

func TestScrambleFromArgs_SeededIsReproducible(t *testing.T) {
	setupCLITest(t)
	solveRandom = 10
	solveSeed = 7
	defer func() { solveRandom = 0; solveSeed = 0 }()

	first, err := scrambleFromArgs(nil)
	if err != nil {
		t.Fatalf("scrambleFromArgs failed: %v", err)
	}
	second, err := scrambleFromArgs(nil)
	if err != nil {
		t.Fatalf("scrambleFromArgs failed: %v", err)
	}

	if cubesolver.FormatTurns(first) != cubesolver.FormatTurns(second) {
		t.Error("expected identical scrambles for the same seed")
	}
	if len(first) != 10 {
		t.Errorf("expected 10 turns, got %d", len(first))
	}
}

func TestRunScramble(t *testing.T) {
	setupCLITest(t)
	scrambleTurns = 5
	scrambleSeed = 3
	defer func() { scrambleTurns = 25; scrambleSeed = 0 }()

	cmd := &cobra.Command{}
	if err := runScramble(cmd, nil); err != nil {
		t.Fatalf("runScramble failed: %v", err)
	}

	scrambleTurns = 0
	if err := runScramble(cmd, nil); err == nil {
		t.Error("expected error for zero turns")
	}
}

func TestRunVerify(t *testing.T) {
	setupCLITest(t)

	cmd := &cobra.Command{}
	if err := runVerify(cmd, []string{"F", "F'"}); err != nil {
		t.Errorf("expected F' to verify against F, got %v", err)
	}
	if err := runVerify(cmd, []string{"F", "F"}); err == nil {
		t.Error("expected verification failure for F followed by F")
	}
	if err := runVerify(cmd, []string{"X", "F"}); err == nil {
		t.Error("expected error for invalid notation")
	}
}

func TestRunHistory(t *testing.T) {
	setupCLITest(t)
	solveRandom = 0
	solveNoRecord = false

	cmd := &cobra.Command{}

	// Empty database lists cleanly.
	if err := runHistoryList(cmd, nil); err != nil {
		t.Fatalf("runHistoryList on empty database failed: %v", err)
	}
	if err := runHistoryStats(cmd, nil); err != nil {
		t.Fatalf("runHistoryStats on empty database failed: %v", err)
	}

	if err := runSolve(cmd, []string{"R", "U2", "F'"}); err != nil {
		t.Fatalf("runSolve failed: %v", err)
	}

	if err := runHistoryList(cmd, nil); err != nil {
		t.Fatalf("runHistoryList failed: %v", err)
	}
	if err := runHistoryStats(cmd, nil); err != nil {
		t.Fatalf("runHistoryStats failed: %v", err)
	}

	showLast = true
	defer func() { showLast = false }()
	if err := runHistoryShow(cmd, nil); err != nil {
		t.Fatalf("runHistoryShow --last failed: %v", err)
	}

	showLast = false
	if err := runHistoryShow(cmd, nil); err == nil {
		t.Error("expected error without a solve ID or --last")
	}
}

func TestWrapNotation(t *testing.T) {
	lines := wrapNotation("R U R' U'", 5)
	want := []string{"R U", "R' U'"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	if lines := wrapNotation("", 60); lines != nil {
		t.Errorf("expected no lines for empty notation, got %v", lines)
	}
}
