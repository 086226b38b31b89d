// Terminal replay of a recorded movement trace
package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// frameDelay is the wall-clock time between frames at speed 1.
const frameDelay = 500 * time.Millisecond

type tickMsg struct{}

var (
	spineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	nodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	frameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
)

// ReplayModel is a bubbletea model stepping through movement frames on
// an ASCII grid of the experiment area.
type ReplayModel struct {
	frames       []Frame
	areaX, areaY float64

	idx      int
	paused   bool
	speed    float64
	width    int
	height   int
	progress progress.Model
}

// NewReplayModel builds the model for a loaded trace.
func NewReplayModel(frames []Frame, areaX, areaY float64) ReplayModel {
	return ReplayModel{
		frames:   frames,
		areaX:    areaX,
		areaY:    areaY,
		speed:    1,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// Frame returns the index of the frame currently shown.
func (m ReplayModel) Frame() int { return m.idx }

// Paused reports whether playback is paused.
func (m ReplayModel) Paused() bool { return m.paused }

func (m ReplayModel) tick() tea.Cmd {
	d := time.Duration(float64(frameDelay) / m.speed)
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m ReplayModel) Init() tea.Cmd {
	return m.tick()
}

func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 4
	case tickMsg:
		if m.paused {
			return m, nil
		}
		if m.idx < len(m.frames)-1 {
			m.idx++
			return m, m.tick()
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}
		case "right", "l":
			if m.idx < len(m.frames)-1 {
				m.idx++
			}
		case "left", "h":
			if m.idx > 0 {
				m.idx--
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
		case "g":
			m.idx = 0
		case "G":
			m.idx = len(m.frames) - 1
		}
	}
	return m, nil
}

func (m ReplayModel) View() string {
	if len(m.frames) == 0 {
		return "no frames loaded"
	}
	frame := m.frames[m.idx]

	gridW := m.width - 4
	gridH := m.height - 8
	if gridW < 10 {
		gridW = 10
	}
	if gridH < 5 {
		gridH = 5
	}

	grid := make([][]string, gridH)
	for y := range grid {
		row := make([]string, gridW)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}
	for _, n := range frame.Nodes {
		// Screen y grows downward, area y grows upward.
		gx := int(n.X / m.areaX * float64(gridW-1))
		gy := gridH - 1 - int(n.Y/m.areaY*float64(gridH-1))
		if gx < 0 || gx >= gridW || gy < 0 || gy >= gridH {
			continue
		}
		label := fmt.Sprintf("%d", n.Node)
		if n.Spine {
			grid[gy][gx] = spineStyle.Render(label)
		} else {
			grid[gy][gx] = nodeStyle.Render(label)
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}

	header := frameStyle.Render(fmt.Sprintf("t=%.2fs  frame %d/%d  speed %.2gx",
		frame.Time, m.idx+1, len(m.frames), m.speed))
	status := "playing"
	if m.paused {
		status = "paused"
	}
	help := wordwrap.String(
		"space pause/resume | ←/→ step | +/- speed | g/G first/last | q quit",
		max(m.width-2, 20))

	sections := []string{
		header + "  " + statusStyle.Render(status),
		borderStyle.Render(strings.TrimRight(b.String(), "\n")),
		m.progress.ViewAs(float64(m.idx) / float64(max(len(m.frames)-1, 1))),
		frameStyle.Render(help),
	}
	return strings.Join(sections, "\n")
}

// Replay runs the TUI over a loaded trace until the user quits.
func Replay(frames []Frame, areaX, areaY float64) error {
	p := tea.NewProgram(NewReplayModel(frames, areaX, areaY), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
