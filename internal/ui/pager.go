// Package ui provides the interactive pager for rendered values.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type pagerModel struct {
	title   string
	content string
	vp      viewport.Model
	ready   bool
	width   int
}

// NewPagerModel returns a Bubble Tea model that scrolls one rendered
// value under a title bar.
func NewPagerModel(title, content string) tea.Model {
	return &pagerModel{
		title:   title,
		content: content,
		width:   80,
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.vp.SetContent(m.content)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	footStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	title := runewidth.Truncate(m.title, m.width, "…")
	footer := footStyle.Render(fmt.Sprintf("%3.0f%%  (q to quit)", m.vp.ScrollPercent()*100))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}
