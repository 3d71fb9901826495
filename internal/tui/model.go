package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wellquest/internal/engine"
	"wellquest/internal/storage"
	"wellquest/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state     *storage.ProgressState
	suggested []engine.Quest

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state     *storage.ProgressState
	suggested []engine.Quest
	err       error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type moodLoggedMsg struct {
	mood int
	err  error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.States().Load(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		suggested, err := m.svc.Suggestions(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{state: st, suggested: suggested}
	}
}

func (m boardModel) completeCmd(q engine.Quest) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, q)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) moodCmd(mood int) tea.Cmd {
	return func() tea.Msg {
		recorded, err := m.svc.LogMood(m.ctx, mood, "")
		return moodLoggedMsg{mood: recorded, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.state = msg.state
		m.suggested = msg.suggested
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		if msg.res.AlreadyDone {
			m.lastLog = fmt.Sprintf("%q already completed today.", msg.res.Title)
			return m, nil
		}
		m.lastLog = fmt.Sprintf("+%d XP! Quest completed: %s", msg.res.XPGained, msg.res.Title)
		if msg.res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp
		}
		for _, b := range msg.res.NewBadges {
			m.lastLog += fmt.Sprintf(" %s %s", ui.IconBadge, b)
		}
		return m, m.loadCmd()
	case moodLoggedMsg:
		if msg.err != nil {
			m.lastLog = "Mood failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Logged mood as %d.", msg.mood)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "1", "2", "3", "4", "5":
			mood := int(msg.String()[0] - '0')
			return m, m.moodCmd(mood)
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			rows := m.questRows()
			if m.selected < len(rows)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			rows := m.questRows()
			if m.selected < 0 || m.selected >= len(rows) {
				return m, nil
			}
			row := rows[m.selected]
			if row.done {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %s…", row.quest.ID)
			return m, m.completeCmd(row.quest)
		}
	}
	return m, nil
}

type questRow struct {
	quest     engine.Quest
	suggested bool
	done      bool
}

func (m boardModel) questRows() []questRow {
	if m.state == nil {
		return nil
	}
	done := map[string]bool{}
	for _, id := range m.state.CompletedOn(m.svc.Today()) {
		done[id] = true
	}

	var out []questRow
	for _, q := range m.svc.Catalog().Quests {
		out = append(out, questRow{quest: q, done: done[q.ID]})
	}
	for _, q := range m.suggested {
		out = append(out, questRow{quest: q, suggested: true, done: done[q.ID]})
	}
	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.state == nil {
		return "WellQuest — loading…"
	}
	lvl := engine.LevelFromXP(m.state.XP)
	bar := ui.ProgressBar(engine.LevelProgress(m.state.XP), engine.XPPerLevel, 24)
	avatar := ""
	if a := m.svc.Catalog().Avatar(m.state.SelectedAvatar); a != nil {
		avatar = a.Emoji + " "
	}
	return fmt.Sprintf("WellQuest | %s%s | Level %d | XP %d %s | Week %d%%",
		avatar, m.state.DisplayName, lvl, m.state.XP, bar, m.state.WeeklyProgress)
}

func (m boardModel) renderSidebar() string {
	if m.state == nil {
		return "Stats\n\nLoading…"
	}
	lines := []string{"Badges"}
	earnedAny := false
	for _, b := range engine.BadgeCatalog(m.state) {
		if !b.Earned {
			continue
		}
		earnedAny = true
		lines = append(lines, fmt.Sprintf("- %s %s", b.Icon, b.Name))
	}
	if !earnedAny {
		lines = append(lines, "(none yet)")
	}
	lines = append(lines, "")
	lines = append(lines, "Leaderboard")
	for _, row := range engine.Leaderboard(m.svc.Catalog().Peers, m.state.DisplayName, m.state.XP) {
		marker := " "
		if row.You {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("%s%d. %s (%d)", marker, row.Rank, row.Name, row.XP))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- 1..5: log mood")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	mood := engine.MoodOn(m.state.MoodLog, m.svc.Today())
	avg := engine.RecentAverage(m.state.MoodLog, engine.MoodWindow)
	var out []string
	out = append(out, fmt.Sprintf("Mood today: %s %d | 7-entry avg %.1f (%s)",
		ui.MoodFace(mood), mood, avg, engine.BandForAverage(avg)))
	out = append(out, "")
	out = append(out, "Quests")

	rows := m.questRows()
	for i, row := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if row.done {
			mark = "[x]"
		}
		label := fmt.Sprintf("%s %s (+%d xp, #%s)", mark, row.quest.Title, row.quest.XP, row.quest.Tag)
		if row.suggested {
			label += " " + ui.Muted.Render("suggested")
		}
		out = append(out, cursor+label)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
