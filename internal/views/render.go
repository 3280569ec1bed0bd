package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	Input      string
	StatusLine string
	StatusWarn bool
	Footer     string
	PaneWidth  int
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true)
)

const defaultPaneWidth = 58

func RenderApp(data AppData) string {
	width := data.PaneWidth
	if width <= 0 {
		width = defaultPaneWidth
	}
	left := panelStyle.Width(width).Render(data.LeftPane)
	right := panelStyle.Width(width).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if data.StatusWarn {
		status = warnStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		inputStyle.Render(data.Input),
	}
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "candy"
	SpeakerNote Speaker = "note"
)

type Entry struct {
	Speaker Speaker
	Text    string
}

func RenderTranscript(entries []Entry) string {
	blocks := make([]string, 0, len(entries))
	for _, e := range entries {
		switch e.Speaker {
		case SpeakerUser:
			blocks = append(blocks, userStyle.Render("> "+e.Text))
		case SpeakerNote:
			blocks = append(blocks, noteStyle.Render(e.Text))
		default:
			blocks = append(blocks, botStyle.Render(e.Text))
		}
	}
	return strings.Join(blocks, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// RenderHelp turns the plain help text (a title line followed by one usage
// form per line) into a markdown list rendered through glamour.
func RenderHelp(text string) string {
	title, body, _ := strings.Cut(text, "\n")
	var b strings.Builder
	b.WriteString("### " + title + "\n\n")
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString("- `" + line + "`\n")
	}
	return RenderMarkdown(b.String())
}
