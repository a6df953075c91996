// Package cli implements the cubesolver command-line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SeamusWaldron/gocube_solver_library"
	"github.com/SeamusWaldron/gocube_solver_library/internal/config"
	"github.com/SeamusWaldron/gocube_solver_library/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	logger *zap.Logger
	cfg    *config.Config
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Algebraic Rubik's cube solver",
	Long: `cubesolver solves the 3x3x3 Rubik's cube with pure permutation algebra:
conjugated exchange operators repair one defect at a time across four phases,
so no pattern databases or lookup tables are needed.

Solve scrambles from the command line, replay recorded solves, or connect
to a GoCube smart cube over Bluetooth and watch it live.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		path := configPath
		if path == "" {
			if path, err = config.DefaultPath(); err != nil {
				return fmt.Errorf("failed to resolve config path: %w", err)
			}
		}
		if cfg, err = config.Load(path); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.Debug("configuration loaded",
			zap.String("path", path),
			zap.Int("corner_search_depth", cfg.Solver.CornerSearchDepth),
			zap.Int("edge_search_depth", cfg.Solver.EdgeSearchDepth))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubesolver/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// openDB opens the solve database. Precedence: --db flag, then config file,
// then the default location.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" && cfg != nil {
		path = cfg.DBPath
	}

	var db *storage.DB
	var err error
	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger.Debug("database opened", zap.String("path", db.Path()))
	return db, nil
}

// newSolver builds a solver with the configured search depths.
func newSolver() *cubesolver.Solver {
	return cubesolver.NewSolver(
		cubesolver.WithCornerSearchDepth(cfg.Solver.CornerSearchDepth),
		cubesolver.WithEdgeSearchDepth(cfg.Solver.EdgeSearchDepth),
	)
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
