package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// model steps through a pre-computed turn replay one action at a time.
type model struct {
	turns    []turn
	cursor   int
	styles   styles
	log      viewport.Model
	width    int
	height   int
	quitting bool
}

func newModel(turns []turn) model {
	vp := viewport.New(72, 10)
	return model{
		turns:  turns,
		styles: defaultStyles(),
		log:    vp,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.log.Width = msg.Width - 8
		m.log.Height = msg.Height - 10
		m.log.SetContent(m.renderLog())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "n", "right", " ", "enter":
			if m.cursor < len(m.turns) {
				m.cursor++
				m.log.SetContent(m.renderLog())
				m.log.GotoBottom()
			}
		case "p", "left":
			if m.cursor > 0 {
				m.cursor--
				m.log.SetContent(m.renderLog())
			}
		case "home":
			m.cursor = 0
			m.log.SetContent(m.renderLog())
		case "end":
			m.cursor = len(m.turns)
			m.log.SetContent(m.renderLog())
			m.log.GotoBottom()
		}
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m model) renderLog() string {
	var sb strings.Builder
	for i, t := range m.turns[:m.cursor] {
		sb.WriteString(fmt.Sprintf("%3d. t=%-3d %s %s\n", i+1, t.Timestamp, m.styles.Agent.Render(t.Agent), t.Action.String()))
	}
	return sb.String()
}

func (m model) View() string {
	if m.quitting {
		return ""
	}
	if len(m.turns) == 0 {
		return m.styles.Header.Render("No actions were committed — the goal may already hold, or planning failed.") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("plan replay  (%d/%d turns)", m.cursor, len(m.turns))))
	sb.WriteString("\n\n")

	if m.cursor < len(m.turns) {
		next := m.turns[m.cursor]
		sb.WriteString(m.styles.Turn.Render(fmt.Sprintf("next: %s", next.Agent)))
		sb.WriteString("\n")
		sb.WriteString(next.Action.String())
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(m.styles.Muted.Render("replay complete"))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.styles.Frame.Render(m.log.View()))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("n/→ advance · p/← back · home/end jump · q quit"))
	return sb.String()
}
