// Package tui renders the FAQ view in the terminal.
package tui

import (
	"backend-faq/internal/view"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pageHeading = "Welcome to Our Platform"

type datasetMsg view.Result

type Model struct {
	state   *view.State
	fetcher view.Fetcher
	keys    keyMap
	help    help.Model
	cursor  int
	width   int

	// position in Categories(); tab names may repeat
	tabIndex int
}

func New(f view.Fetcher) Model {
	return Model{
		state:   view.NewState(),
		fetcher: f,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// State exposes the underlying view state, mainly for tests.
func (m Model) State() *view.State {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return m.fetch
}

func (m Model) fetch() tea.Msg {
	return datasetMsg(view.Fetch(context.Background(), m.fetcher))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case datasetMsg:
		m.state.Resolve(msg.Dataset, msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state.Phase() != view.PhaseLoaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.moveTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		m.moveTab(-1)
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.FilteredFAQs())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(m.state.FilteredFAQs()) {
			m.state.Toggle(m.cursor)
		}
	}

	return m, nil
}

func (m *Model) moveTab(delta int) {
	categories := m.state.Categories()
	m.tabIndex = (m.tabIndex + delta + len(categories)) % len(categories)
	m.state.SelectTab(categories[m.tabIndex])
	m.cursor = 0
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(Styles.Heading.Render(pageHeading))
	b.WriteString("\n")

	switch m.state.Phase() {
	case view.PhaseLoading:
		b.WriteString(Styles.Empty.Render("Loading FAQs…"))
		b.WriteString("\n")
	case view.PhaseLoadFailed:
		b.WriteString(Styles.Error.Render("Failed to load FAQs."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderDataset())
	}

	b.WriteString(Styles.Hint.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderDataset() string {
	var b strings.Builder
	ds := m.state.Dataset

	b.WriteString(Styles.Title.Render(ds.Title))
	b.WriteString("\n")
	b.WriteString(Styles.Description.Render(ds.Description))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	items := m.state.FilteredFAQs()
	if len(items) == 0 {
		b.WriteString(Styles.Empty.Render("No questions in this category."))
		b.WriteString("\n")
		return b.String()
	}

	answerStyle := Styles.Answer
	if m.width > 8 {
		answerStyle = answerStyle.Width(m.width - 4)
	}

	for i, item := range items {
		marker := "▸"
		if m.state.IsExpanded(i) {
			marker = "▾"
		}

		line := marker + " " + item.Question
		if i == m.cursor {
			b.WriteString(Styles.Cursor.Render(line))
		} else {
			b.WriteString(Styles.Question.Render(line))
		}
		b.WriteString("\n")

		if m.state.IsExpanded(i) {
			b.WriteString(answerStyle.Render(item.Answer))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) renderTabs() string {
	categories := m.state.Categories()
	tabs := make([]string, 0, len(categories))
	for i, name := range categories {
		if i == m.tabIndex {
			tabs = append(tabs, Styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, Styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
