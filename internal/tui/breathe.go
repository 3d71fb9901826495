package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wellquest/internal/ui"
)

// The breathing mini-game cycles inhale → hold → exhale, counting each
// phase down from phaseCount once per second. It is purely
// presentational; the caller completes the mini-game quest when the
// player stops it.

const phaseCount = 4

type breathePhase string

const (
	phaseInhale breathePhase = "inhale"
	phaseHold   breathePhase = "hold"
	phaseExhale breathePhase = "exhale"
)

func (p breathePhase) next() breathePhase {
	switch p {
	case phaseInhale:
		return phaseHold
	case phaseHold:
		return phaseExhale
	default:
		return phaseInhale
	}
}

type breatheTickMsg time.Time

type breatheModel struct {
	phase   breathePhase
	count   int
	elapsed int
}

func newBreatheModel() breatheModel {
	return breatheModel{phase: phaseInhale, count: phaseCount}
}

func breatheTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return breatheTickMsg(t)
	})
}

func (m breatheModel) Init() tea.Cmd {
	return breatheTick()
}

func (m breatheModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case breatheTickMsg:
		m.elapsed++
		m.count--
		if m.count < 1 {
			m.count = phaseCount
			m.phase = m.phase.next()
		}
		return m, breatheTick()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter", " ":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m breatheModel) View() string {
	var bubble string
	switch m.phase {
	case phaseInhale:
		bubble = strings.Repeat(ui.IconBubble, 3)
	case phaseExhale:
		bubble = ui.IconBubble
	default:
		bubble = strings.Repeat(ui.IconBubble, 2)
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconBubble, "Bubble Breath") + "\n\n")
	b.WriteString("      " + bubble + "\n\n")
	b.WriteString(fmt.Sprintf("  %s — count %d\n", ui.H2.Render(string(m.phase)), m.count))
	b.WriteString("\n" + ui.Muted.Render("press any of q/esc/space to finish") + "\n")
	return b.String()
}

// RunBreathing runs the mini-game until the player stops it and returns
// how long they breathed.
func RunBreathing(out io.Writer) (time.Duration, error) {
	p := tea.NewProgram(newBreatheModel(), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(breatheModel)
	if !ok {
		return 0, nil
	}
	return time.Duration(m.elapsed) * time.Second, nil
}
