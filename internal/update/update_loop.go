package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/candy/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.loadWarnings > 0 {
		return tea.Batch(textinput.Blink, m.startupStatus())
	}
	return textinput.Blink
}

// startupStatus reports load warnings in the status bar once the program runs.
func (m Model) startupStatus() tea.Cmd {
	n := m.loadWarnings
	return func() tea.Msg {
		return SetStatusMsg{Text: fmt.Sprintf("%d load warning(s), see transcript", n), IsWarn: true}
	}
}

// setStatus shows text and schedules its removal after statusTTL.
func (m *Model) setStatus(text string, warn bool) tea.Cmd {
	m.statusSeq++
	m.Status = StatusBar{Text: text, IsWarn: warn}
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(typed, m.Keys.Quit):
			m.Quitting = true
			return m, tea.Quit
		case key.Matches(typed, m.Keys.Help):
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case key.Matches(typed, m.Keys.Submit):
			return m.submit()
		case key.Matches(typed, m.Keys.ScrollUp, m.Keys.ScrollDown):
			var cmd tea.Cmd
			m.transcriptView, cmd = m.transcriptView.Update(typed)
			return m, cmd
		}
		if typed.Type == tea.KeyRunes || typed.Type == tea.KeySpace {
			m.input.SetValue(m.input.Value() + string(typed.Runes))
			m.input.CursorEnd()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(typed)
		return m, cmd
	case tea.WindowSizeMsg:
		m.resize(typed.Width, typed.Height)
		return m, nil
	case SetStatusMsg:
		return m, m.setStatus(typed.Text, typed.IsWarn)
	case ClearStatusMsg:
		if typed.Seq == m.statusSeq {
			m.Status = StatusBar{}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the current input line to the session. Blank input is passed
// through so the session can answer it like any other line.
func (m Model) submit() (Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.appendEntry(views.SpeakerUser, line)

	res := m.Session.Respond(m.ctx, line)
	m.appendEntry(views.SpeakerBot, res.Message)
	if res.Exit {
		m.farewell = res.Message
		m.Quitting = true
		return m, tea.Quit
	}
	if res.Warning != "" {
		m.appendEntry(views.SpeakerNote, res.Warning)
		return m, m.setStatus(res.Warning, true)
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		status = fmt.Sprintf("status: %s", m.Status.Text)
	}
	if m.Quitting {
		if m.farewell == "" {
			return ""
		}
		return m.farewell + "\n"
	}
	count := 0
	if m.Session != nil {
		count = m.Session.Tasks().Len()
	}
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("candy | tasks: %d", count),
		LeftPane:   m.transcriptView.View(),
		RightPane:  strings.TrimRight(m.renderTasksPanel()+m.renderHelpIfVisible(), "\n"),
		Input:      m.input.View(),
		StatusLine: status,
		StatusWarn: m.Status.IsWarn,
		Footer:     m.helpModel.ShortHelpView(m.Keys.ShortHelp()),
		PaneWidth:  m.paneWidth,
	})
}
