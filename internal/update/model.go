package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/sandeepkv93/candy/internal/config"
	"github.com/sandeepkv93/candy/internal/executor"
	"github.com/sandeepkv93/candy/internal/views"
)

type StatusBar struct {
	Text   string
	IsWarn bool
}

type Model struct {
	Session      *executor.Session
	Transcript   []views.Entry
	HistoryLimit int
	Status       StatusBar
	HelpVisible  bool
	Keys         KeyMap
	Quitting     bool

	ctx          context.Context
	now          func() time.Time
	paneWidth    int
	commandsHelp string
	farewell     string
	dirty        bool
	statusSeq    int
	loadWarnings int
	// Bubble components used for rich TUI controls
	input          textinput.Model
	transcriptView viewport.Model
	taskTable      table.Model
	doneProgress   progress.Model
	helpModel      help.Model
}

type SetStatusMsg struct {
	Text   string
	IsWarn bool
}

// ClearStatusMsg clears the status bar if it still shows the status with the
// same sequence number.
type ClearStatusMsg struct {
	Seq int
}

const statusTTL = 5 * time.Second

func NewModel(session *executor.Session) Model {
	return NewModelWithConfig(context.Background(), session, config.DefaultRuntimeConfig(), nil)
}

// NewModelWithConfig builds the chat model around an already loaded session.
// Load warnings are shown once, ahead of the greeting.
func NewModelWithConfig(ctx context.Context, session *executor.Session, cfg config.RuntimeConfig, warnings []error) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := Model{
		Session:      session,
		HistoryLimit: cfg.HistoryLimit,
		Keys:         DefaultKeyMap(),
		ctx:          ctx,
		now:          time.Now,
		paneWidth:    58,
	}
	if m.HistoryLimit <= 0 {
		m.HistoryLimit = config.DefaultRuntimeConfig().HistoryLimit
	}
	for _, w := range warnings {
		m.appendEntry(views.SpeakerNote, executor.DescribeLoadWarning(w))
	}
	m.loadWarnings = len(warnings)
	m.appendEntry(views.SpeakerBot, executor.Greeting)
	m.commandsHelp = views.RenderHelp(executor.HelpText())
	m.initBubbleComponents()
	m.syncBubbleData()
	return m
}

func (m *Model) initBubbleComponents() {
	m.input = textinput.New()
	m.input.Prompt = "candy> "
	m.input.Placeholder = "type a command, e.g. todo buy milk"
	m.input.CharLimit = 512
	m.input.Width = 2*m.paneWidth - 8
	m.input.Focus()

	m.transcriptView = viewport.New(m.paneWidth, 18)

	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Type", Width: 4},
		{Title: "Done", Width: 4},
		{Title: "Description", Width: 24},
		{Title: "When", Width: 16},
	}
	m.taskTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(false), table.WithHeight(10))

	m.doneProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(m.paneWidth-4))

	m.helpModel = help.New()
}

func (m *Model) appendEntry(speaker views.Speaker, text string) {
	m.Transcript = append(m.Transcript, views.Entry{Speaker: speaker, Text: text})
	if m.HistoryLimit > 0 && len(m.Transcript) > m.HistoryLimit {
		m.Transcript = m.Transcript[len(m.Transcript)-m.HistoryLimit:]
	}
	m.dirty = true
}

// syncBubbleData pushes session state into the bubble components. The
// transcript only jumps to the bottom when it changed, so scrolling sticks.
func (m *Model) syncBubbleData() {
	if m.dirty {
		m.transcriptView.SetContent(views.RenderTranscript(m.Transcript))
		m.transcriptView.GotoBottom()
		m.dirty = false
	}
	m.taskTable.SetRows(m.taskRows())
	m.helpModel.ShowAll = m.HelpVisible
}

func (m *Model) resize(width, height int) {
	pane := (width - 6) / 2
	if pane < 30 {
		pane = 30
	}
	m.paneWidth = pane
	m.transcriptView.Width = pane
	if h := height - 8; h > 5 {
		m.transcriptView.Height = h
		m.taskTable.SetHeight(h - 6)
	}
	m.input.Width = 2*pane - 8
	m.doneProgress.Width = pane - 4
	m.dirty = true
}
