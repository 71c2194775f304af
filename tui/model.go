package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"m8speak/narrate"
	"m8speak/remote"
	"m8speak/theme"
	"m8speak/widgets"
)

type Model struct {
	Loop   *narrate.Loop
	Remote *remote.Manager // may be nil
	Theme  *theme.Theme

	keys     keyMap
	help     help.Model
	showHelp bool

	frame    narrate.Frame
	log      []narrate.Utterance
	logLines int
	remote   string
	remoteUp bool
	quitting bool
}

type FrameMsg narrate.Frame

type RemoteMsg remote.StatusEvent

func NewModel(loop *narrate.Loop, rm *remote.Manager, th *theme.Theme, logLines int) Model {
	return Model{
		Loop:     loop,
		Remote:   rm,
		Theme:    th,
		keys:     defaultKeys(),
		help:     help.New(),
		logLines: logLines,
	}
}

func ListenForFrames(loop *narrate.Loop) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-loop.Frames()
		if !ok {
			return nil
		}
		return FrameMsg(f)
	}
}

func ListenForRemote(rm *remote.Manager) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-rm.Events()
		if !ok {
			return nil
		}
		return RemoteMsg(e)
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ListenForFrames(m.Loop)}
	if m.Remote != nil {
		cmds = append(cmds, ListenForRemote(m.Remote))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.RepeatPage):
			m.Loop.Do(narrate.RepeatPage)
		case key.Matches(msg, m.keys.RepeatValue):
			m.Loop.Do(narrate.RepeatValue)
		case key.Matches(msg, m.keys.Silence):
			m.Loop.Do(narrate.Silence)
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case FrameMsg:
		m.frame = narrate.Frame(msg)
		m.log = append(m.log, msg.Spoken...)
		if over := len(m.log) - m.logLines; over > 0 {
			m.log = m.log[over:]
		}
		return m, ListenForFrames(m.Loop)

	case RemoteMsg:
		e := remote.StatusEvent(msg)
		m.remote = e.Port
		m.remoteUp = e.Type == remote.Connected
		return m, ListenForRemote(m.Remote)
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	labelStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())

	header := headerStyle.Render(fmt.Sprintf("m8speak  %s", strings.ToLower(m.frame.Page.Text())))
	status := fmt.Sprintf("%s bg  %s", widgets.RenderSwatch(m.frame.Background), m.remoteStatus())

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderScreen(m.frame.Screen, m.frame.Selection, m.frame.Background, m.Theme))
	out.WriteString("\n\n")
	out.WriteString(labelStyle.Render(m.frame.Label))
	out.WriteString("\n")
	out.WriteString(dimStyle.Render(status))
	out.WriteString("\n\n")
	for _, u := range m.log {
		out.WriteString(m.logLine(u))
		out.WriteString("\n")
	}
	out.WriteString("\n")

	if m.showHelp {
		out.WriteString(widgets.RenderKeyHelp(m.keys.sections()))
	} else {
		out.WriteString(m.help.View(m.keys))
	}
	return out.String()
}

func (m Model) remoteStatus() string {
	if m.Remote == nil {
		return string(m.Theme.Symbols.Disconnected) + " remote off"
	}
	if !m.remoteUp {
		return string(m.Theme.Symbols.Disconnected) + " waiting for remote"
	}
	return string(m.Theme.Symbols.Connected) + " " + m.remote
}

func (m Model) logLine(u narrate.Utterance) string {
	sym := m.Theme.Symbols.Value
	color := m.Theme.FG()
	switch u.Category {
	case narrate.Page:
		sym, color = m.Theme.Symbols.Page, m.Theme.Accent()
	case narrate.Hint:
		sym, color = m.Theme.Symbols.Hint, m.Theme.Muted()
	}
	mark := " "
	if u.Cancelled {
		mark = string(m.Theme.Symbols.Cancelled)
	}
	return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%s %c %s", mark, sym, u.Text))
}
