package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/primer/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenTranscript
)

type lessonItem struct {
	ref domain.LessonRef
}

func (i lessonItem) Title() string       { return i.ref.Title }
func (i lessonItem) Description() string { return i.ref.Name + " · " + i.ref.Summary }
func (i lessonItem) FilterValue() string { return i.ref.Name + " " + i.ref.Title }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	menu   list.Model
	pane   viewport.Model
	width  int
	height int

	running    bool
	runningFor string
	transcript domain.Transcript
	savedID    string

	toast string

	cwd            string
	workspaceFound bool
	workspaceRoot  string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	var items []list.Item
	if deps.Catalog != nil {
		for _, ref := range deps.Catalog.ListLessons() {
			items = append(items, lessonItem{ref: ref})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Lessons"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		pane:  viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return cmdRefreshWorkspace(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(max(msg.Width-8, 10), max(msg.Height-12, 5))
		m.pane.Width = max(msg.Width-8, 10)
		m.pane.Height = max(msg.Height-10, 3)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created in " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case lessonDoneMsg:
		m.running = false
		m.runningFor = ""
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			if len(msg.transcript.Lines) == 0 {
				return m, nil
			}
		} else {
			m.toast = ""
		}
		m.transcript = msg.transcript
		m.savedID = msg.id
		m.pane.SetContent(renderTranscript(m.theme, msg.transcript))
		m.pane.GotoTop()
		m.scr = screenTranscript
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenHome && m.menu.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome {
				return m, tea.Quit
			}
			m.scr = screenHome
			return m, nil

		case "esc", "b":
			if m.scr != screenHome {
				m.scr = screenHome
				return m, nil
			}

		case "enter":
			if m.scr == screenHome && !m.running {
				it, ok := m.menu.SelectedItem().(lessonItem)
				if !ok {
					return m, nil
				}
				return m.startLesson(it.ref.Name)
			}

		case "i":
			if m.scr == screenHome && !m.workspaceFound && m.cwd != "" {
				return m, cmdInitWorkspaceHere(m.deps, m.cwd)
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenTranscript:
		m.pane, cmd = m.pane.Update(msg)
	}
	return m, cmd
}

func (m model) startLesson(name string) (tea.Model, tea.Cmd) {
	if m.deps.Catalog == nil {
		m.toast = "No lessons available"
		return m, nil
	}
	root := ""
	if m.workspaceFound {
		root = m.workspaceRoot
	}
	cmd := startLessonAsync(m.deps.Catalog, root, name, m.deps.Logger, m.deps.Debug)
	m.running = true
	m.runningFor = name
	m.toast = ""
	return m, cmd
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("primer") + "\n" +
		m.theme.Subtitle.Render("runnable Go walkthroughs") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Help.Render("No workspace: transcripts are not saved (press i to create one here)")
	}

	var status string
	switch {
	case m.running:
		status = m.theme.Help.Render("running " + m.runningFor + "…")
	case m.toast != "":
		status = m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter run • / search • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + status + "\n" + help)

	case screenTranscript:
		title := fmt.Sprintf("%s (%d lines)", m.transcript.Title, len(m.transcript.Lines))
		if m.savedID != "" {
			title += "  saved " + clampString(m.savedID, 40)
		}
		help := m.theme.Help.Render("↑/↓ scroll • esc/b back • q home")
		card := m.theme.Card.Render(m.theme.Title.Render(title) + "\n\n" + m.pane.View())
		return wrap.Render(header + "\n" + card + "\n" + status + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
