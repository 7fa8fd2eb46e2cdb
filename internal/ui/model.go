package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current stage of a command
type Stage int

const (
	StageAnalyze Stage = iota
	StageWaiting
	StageReceiving
	StageDone
)

// Message types for updating the model
type (
	StageMsg     Stage
	OperationMsg string
	FragmentMsg  int
	ExpectMsg    int
	DoneMsg      struct{ Err error }
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage     Stage
	spinner   spinner.Model
	progress  progress.Model
	currentOp string
	expected  int
	received  int
	width     int
	quitting  bool
	err       error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageAnalyze,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		return m, nil

	case OperationMsg:
		m.currentOp = string(msg)
		return m, nil

	case ExpectMsg:
		m.expected = int(msg)
		return m, nil

	case FragmentMsg:
		m.received += int(msg)
		if m.stage < StageReceiving {
			m.stage = StageReceiving
		}
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// ratio estimates how far the generation has progressed against the
// expected output size; it never reports completion before Done.
func (m Model) ratio() float64 {
	if m.expected <= 0 {
		return 0
	}
	r := float64(m.received) / float64(m.expected)
	if r > 0.99 {
		r = 0.99
	}
	return r
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageAnalyze:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Analyzing code...")

	case StageWaiting:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" ")
		if m.currentOp != "" {
			sb.WriteString(m.currentOp)
		} else {
			sb.WriteString("Waiting for model...")
		}

	case StageReceiving:
		if m.expected > 0 {
			sb.WriteString(m.progress.ViewAs(m.ratio()))
			sb.WriteString("\n")
		}
		sb.WriteString(m.spinner.View())
		sb.WriteString(fmt.Sprintf(" Receiving (%s)", formatBytes(m.received)))
	}

	return sb.String()
}

func formatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}
