package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_solver_library"
	"github.com/SeamusWaldron/gocube_solver_library/internal/ble"
	"github.com/SeamusWaldron/gocube_solver_library/internal/storage"
)

var watchTimeout time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Track a GoCube smart cube live",
	Long: `Connect to a GoCube over Bluetooth and follow it live. Every physical turn
updates the tracked configuration and its defect counts.

Keyboard shortcuts:
  s  - Solve the current configuration and record the result
  r  - Mark the cube's current state as solved
  f  - Flash the cube backlight
  q  - Quit`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchTimeout, "timeout", 0, "BLE scan timeout (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	opts := []ble.Option{
		ble.WithScanTimeout(cfg.BLE.ScanTimeout),
		ble.WithNamePrefix(cfg.BLE.NamePrefix),
	}
	if watchTimeout > 0 {
		opts = append(opts, ble.WithScanTimeout(watchTimeout))
	}

	tracker, err := ble.NewTracker(opts...)
	if err != nil {
		return err
	}
	defer tracker.Close()

	// Scan before entering the TUI so failures print as plain text.
	fmt.Println("Scanning for cubes...")
	results, err := tracker.Scan(context.Background())
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No cubes found.")
		fmt.Println()
		fmt.Println("To fix this:")
		fmt.Println("  1. Rotate your cube to wake it up")
		fmt.Println("  2. Make sure it's not connected to your phone")
		fmt.Println("  3. Run this command again")
		return nil
	}

	for _, r := range results {
		logger.Debug("found cube",
			zap.String("name", r.Name),
			zap.String("uuid", r.UUID),
			zap.Int16("rssi", r.RSSI))
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	model := newWatchModel(db, tracker, results[0])
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("watch error: %w", err)
	}

	return nil
}

// Messages
type watchTickMsg time.Time
type watchConnectedMsg struct{ name string }
type watchErrMsg struct{ err error }
type watchTurnMsg struct {
	turn  cubesolver.Turn
	state cubesolver.Configuration
}
type watchSolvedMsg struct {
	solution *cubesolver.Solution
	solveID  string
	elapsed  time.Duration
	err      error
}

// Watch model
type watchModel struct {
	db      *storage.DB
	tracker *ble.Tracker
	solver  *cubesolver.Solver
	target  ble.ScanResult
	turnCh  chan watchTurnMsg

	connected  bool
	deviceName string
	battery    int
	state      cubesolver.Configuration
	turnCount  int

	solving      bool
	solution     *cubesolver.Solution
	solveID      string
	solveElapsed time.Duration

	spinner  spinner.Model
	err      error
	quitting bool
}

func newWatchModel(db *storage.DB, tracker *ble.Tracker, target ble.ScanResult) *watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return &watchModel{
		db:      db,
		tracker: tracker,
		solver:  newSolver(),
		target:  target,
		turnCh:  make(chan watchTurnMsg, 100),
		battery: -1,
		state:   cubesolver.Solved(),
		spinner: sp,
	}
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.connect(),
		m.listenForTurns(),
		m.tickCmd(),
	)
}

func (m *watchModel) connect() tea.Cmd {
	return func() tea.Msg {
		m.tracker.OnTurn(func(turn cubesolver.Turn, state cubesolver.Configuration) {
			select {
			case m.turnCh <- watchTurnMsg{turn: turn, state: state}:
			default:
				// Channel full, drop the update; the next one carries the state.
			}
		})

		if err := m.tracker.Connect(context.Background(), m.target); err != nil {
			return watchErrMsg{err: fmt.Errorf("connection failed: %w", err)}
		}
		return watchConnectedMsg{name: m.tracker.DeviceName()}
	}
}

func (m *watchModel) listenForTurns() tea.Cmd {
	return func() tea.Msg {
		return <-m.turnCh
	}
}

func (m *watchModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m *watchModel) solveCmd() tea.Cmd {
	return func() tea.Msg {
		scramble := m.tracker.History()
		if len(scramble) == 0 {
			return watchSolvedMsg{err: fmt.Errorf("cube is already solved")}
		}

		start := time.Now()
		solution, err := m.solver.SolveDetailed(scramble)
		if err != nil {
			return watchSolvedMsg{err: err}
		}
		elapsed := time.Since(start)

		solve := newSolveRecord(scramble, solution, storage.SourceBLE, elapsed)
		repo := storage.NewSolveRepository(m.db)
		if err := repo.Create(solve); err != nil {
			return watchSolvedMsg{solution: solution, elapsed: elapsed, err: err}
		}

		return watchSolvedMsg{solution: solution, solveID: solve.SolveID, elapsed: elapsed}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "s":
			if m.connected && !m.solving {
				m.solving = true
				m.err = nil
				return m, m.solveCmd()
			}

		case "r":
			if m.connected {
				if err := m.tracker.ResetSolved(); err != nil {
					m.err = err
				} else {
					m.state = cubesolver.Solved()
					m.turnCount = 0
					m.solution = nil
					m.solveID = ""
				}
			}

		case "f":
			if m.connected {
				if err := m.tracker.FlashBacklight(); err != nil {
					m.err = err
				}
			}
		}

	case spinner.TickMsg:
		if !m.connected {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case watchTickMsg:
		if m.connected {
			m.battery = m.tracker.Battery()
		}
		return m, m.tickCmd()

	case watchConnectedMsg:
		m.connected = true
		m.deviceName = msg.name

	case watchErrMsg:
		m.err = msg.err

	case watchTurnMsg:
		m.state = msg.state
		m.turnCount++
		// A physical turn invalidates any displayed solution.
		m.solution = nil
		m.solveID = ""
		return m, m.listenForTurns()

	case watchSolvedMsg:
		m.solving = false
		if msg.err != nil {
			m.err = msg.err
		}
		m.solution = msg.solution
		m.solveID = msg.solveID
		m.solveElapsed = msg.elapsed
	}

	return m, nil
}

func (m *watchModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Live Cube Watch"))
	b.WriteString("\n\n")

	if m.connected {
		status := fmt.Sprintf("Connected: %s", m.deviceName)
		if m.battery >= 0 {
			status += fmt.Sprintf(" (Battery: %d%%)", m.battery)
		}
		b.WriteString(statusStyle.Render(status))
	} else {
		b.WriteString(m.spinner.View())
		b.WriteString(statusStyle.Render(fmt.Sprintf(" Connecting to %s...", m.target.Name)))
	}
	b.WriteString("\n\n")

	if m.connected {
		if m.state.IsSolved() {
			b.WriteString(solvedStyle.Render("SOLVED"))
			b.WriteString("\n")
		} else {
			b.WriteString(fmt.Sprintf("Corners: %d misplaced, %d twisted\n",
				m.state.MisplacedCorners(), m.state.TwistedCorners()))
			b.WriteString(fmt.Sprintf("Edges:   %d misplaced, %d flipped\n",
				m.state.MisplacedEdges(), m.state.FlippedEdges()))
		}

		b.WriteString(fmt.Sprintf("Turns since solved: %d\n", m.turnCount))
		b.WriteString("\n")

		history := m.tracker.History()
		if len(history) > 0 {
			b.WriteString("Turns: ")
			start := 0
			if len(history) > 20 {
				start = len(history) - 20
				b.WriteString("... ")
			}
			b.WriteString(moveStyle.Render(cubesolver.FormatTurns(history[start:])))
			b.WriteString("\n")
		}
	}

	if m.solving {
		b.WriteString("\n")
		b.WriteString(phaseStyle.Render("Solving..."))
		b.WriteString("\n")
	}

	if m.solution != nil {
		b.WriteString("\n")
		b.WriteString(phaseStyle.Render(fmt.Sprintf("Solution (%d turns, %s)",
			m.solution.Len(), formatDuration(m.solveElapsed))))
		b.WriteString("\n")
		for _, line := range wrapNotation(m.solution.Notation(), 60) {
			b.WriteString(moveStyle.Render(line))
			b.WriteString("\n")
		}
		if m.solveID != "" {
			b.WriteString(statusStyle.Render(fmt.Sprintf("Recorded solve %s", m.solveID[:8])))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: s=solve  r=mark solved  f=flash  q=quit"))
	b.WriteString("\n")

	return b.String()
}
