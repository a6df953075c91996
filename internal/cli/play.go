package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver_library"
	"github.com/SeamusWaldron/gocube_solver_library/internal/storage"
)

var (
	playLast  bool
	playSpeed float64
	playStep  bool
)

var playCmd = &cobra.Command{
	Use:   "play [solve-id]",
	Short: "Replay a recorded solve turn by turn",
	Long: `Replay a recorded solve in an interactive view. The cube starts in the
scrambled configuration and the solution is applied one turn at a time, with
live defect counts showing each phase draining.

Usage:
  cubesolver play --last
  cubesolver play <solve-id>
  cubesolver play --last --speed 4
  cubesolver play --last --step`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playLast, "last", false, "Replay the most recent solve")
	playCmd.Flags().Float64VarP(&playSpeed, "speed", "s", 1.0, "Playback speed multiplier")
	playCmd.Flags().BoolVarP(&playStep, "step", "t", false, "Step through turns manually")
}

func runPlay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var solve *storage.Solve
	switch {
	case playLast:
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

	model, err := newPlayModel(solve, playSpeed, playStep)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playback error: %w", err)
	}

	return nil
}

// Playback model
type playModel struct {
	solve    *storage.Solve
	scramble []cubesolver.Turn
	solution []cubesolver.Turn
	start    cubesolver.Configuration

	index    int
	state    cubesolver.Configuration
	speed    float64
	stepMode bool
	paused   bool

	progress progress.Model
	quitting bool
}

func newPlayModel(solve *storage.Solve, speed float64, stepMode bool) (*playModel, error) {
	scramble, err := cubesolver.ParseTurns(solve.Scramble)
	if err != nil {
		return nil, fmt.Errorf("stored scramble is invalid: %w", err)
	}
	solution, err := cubesolver.ParseTurns(solve.Solution)
	if err != nil {
		return nil, fmt.Errorf("stored solution is invalid: %w", err)
	}

	start, err := cubesolver.Apply(scramble)
	if err != nil {
		return nil, err
	}

	return &playModel{
		solve:    solve,
		scramble: scramble,
		solution: solution,
		start:    start,
		state:    start,
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode,
		progress: progress.New(progress.WithDefaultGradient()),
	}, nil
}

type playTickMsg time.Time

func (m *playModel) Init() tea.Cmd {
	if m.stepMode {
		return nil
	}
	return m.scheduleNextTurn()
}

func (m *playModel) scheduleNextTurn() tea.Cmd {
	if m.index >= len(m.solution) {
		return nil
	}
	delay := time.Duration(float64(200*time.Millisecond) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) advance() {
	if m.index >= len(m.solution) {
		return
	}
	mv, err := cubesolver.Replay(m.solution[m.index : m.index+1])
	if err != nil {
		return
	}
	m.state = m.state.Transform(mv)
	m.index++
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.advance()
			} else {
				m.paused = !m.paused
				if !m.paused {
					return m, m.scheduleNextTurn()
				}
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextTurn()
			}

		case "r":
			m.index = 0
			m.state = m.start
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextTurn()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 60 {
			width = 60
		}
		if width > 0 {
			m.progress.Width = width
		}

	case playTickMsg:
		if !m.paused {
			m.advance()
			return m, m.scheduleNextTurn()
		}
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return "Playback ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Solve Playback"))
	b.WriteString("\n\n")

	id := m.solve.SolveID
	if id == "" {
		id = "unsaved"
	} else if len(id) > 8 {
		id = id[:8]
	}
	b.WriteString(statusStyle.Render(fmt.Sprintf("Solve %s (%s, %s)",
		id,
		m.solve.Source,
		m.solve.CreatedAt.Local().Format("2006-01-02 15:04:05"))))
	b.WriteString("\n\n")

	frac := 1.0
	if len(m.solution) > 0 {
		frac = float64(m.index) / float64(len(m.solution))
	}
	b.WriteString(m.progress.ViewAs(frac))
	b.WriteString("\n")

	status := fmt.Sprintf("Turn %d/%d (%.1fx speed)", m.index, len(m.solution), m.speed)
	if m.paused && !m.stepMode {
		status += " [PAUSED]"
	}
	if m.stepMode {
		status += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n\n")

	if m.state.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED!"))
		b.WriteString("\n")
	} else {
		b.WriteString(fmt.Sprintf("Corners: %d misplaced, %d twisted\n",
			m.state.MisplacedCorners(), m.state.TwistedCorners()))
		b.WriteString(fmt.Sprintf("Edges:   %d misplaced, %d flipped\n",
			m.state.MisplacedEdges(), m.state.FlippedEdges()))
	}
	b.WriteString("\n")

	if m.index > 0 {
		b.WriteString("Turns: ")
		start := 0
		if m.index > 20 {
			start = m.index - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(cubesolver.FormatTurns(m.solution[start:m.index])))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	help := "SPACE=pause/resume  n=step  r=restart  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next turn  r=restart  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
