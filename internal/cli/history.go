package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver_library/internal/storage"
)

var (
	historyLimit int
	showLast     bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	Long:  `List recorded solves, newest first.`,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show one solve in full",
	RunE:  runHistoryShow,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics over recorded solves",
	RunE:  runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to list")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")

	historyCmd.AddCommand(historyStatsCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		fmt.Println("Solve something first with: cubesolver solve --random 25")
		return nil
	}

	fmt.Printf("Recent solves (showing %d):\n", len(solves))
	fmt.Println()
	fmt.Printf("%-36s  %-19s  %-6s  %8s  %8s  %s\n", "ID", "Created", "Source", "Scramble", "Solution", "Duration")
	fmt.Println("------------------------------------  -------------------  ------  --------  --------  --------")

	for _, s := range solves {
		fmt.Printf("%-36s  %-19s  %-6s  %8d  %8d  %s\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Source,
			s.ScrambleLen,
			s.SolutionLen,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond),
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var solve *storage.Solve
	switch {
	case showLast:
		solve, err = repo.GetLast()
	case len(args) > 0:
		solve, err = repo.Get(args[0])
	default:
		return fmt.Errorf("provide a solve ID or use --last")
	}
	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if solve == nil {
		return fmt.Errorf("solve not found")
	}

	fmt.Println("Solve Details")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("ID:       %s\n", solve.SolveID)
	fmt.Printf("Created:  %s\n", solve.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Source:   %s\n", solve.Source)
	fmt.Printf("Duration: %s\n", formatDuration(time.Duration(solve.DurationMs)*time.Millisecond))
	fmt.Println()

	fmt.Printf("Scramble (%d turns)\n", solve.ScrambleLen)
	fmt.Println("--------")
	printWrapped(solve.Scramble)
	fmt.Println()

	fmt.Printf("Solution (%d turns)\n", solve.SolutionLen)
	fmt.Println("--------")
	printWrapped(solve.Solution)
	fmt.Println()

	fmt.Println("Phases")
	fmt.Println("------")
	fmt.Printf("%-20s  %5d turns\n", "Corner placement", solve.CornerPlacementTurns)
	fmt.Printf("%-20s  %5d turns\n", "Corner orientation", solve.CornerOrientationTurns)
	fmt.Printf("%-20s  %5d turns\n", "Edge placement", solve.EdgePlacementTurns)
	fmt.Printf("%-20s  %5d turns\n", "Edge orientation", solve.EdgeOrientationTurns)

	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	stats, err := repo.Stats()
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	if stats.Count == 0 {
		fmt.Println("No solves recorded yet")
		return nil
	}

	fmt.Println("Solve Statistics")
	fmt.Println("================")
	fmt.Println()
	fmt.Printf("Solves:              %d\n", stats.Count)
	fmt.Printf("Avg solution length: %.1f turns\n", stats.AvgSolutionLen)
	fmt.Printf("Min solution length: %d turns\n", stats.MinSolutionLen)
	fmt.Printf("Max solution length: %d turns\n", stats.MaxSolutionLen)
	fmt.Printf("Avg solve time:      %s\n", formatDuration(time.Duration(stats.AvgDurationMs)*time.Millisecond))

	return nil
}
