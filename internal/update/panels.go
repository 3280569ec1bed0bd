package update

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/sandeepkv93/candy/internal/model"
	"github.com/sandeepkv93/candy/internal/views"
)

func (m Model) taskRows() []table.Row {
	if m.Session == nil {
		return nil
	}
	tasks := m.Session.Tasks().Tasks()
	rows := make([]table.Row, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			string(t.Kind()),
			t.StatusIcon(),
			t.Description(),
			when(t),
		})
	}
	return rows
}

func when(t *model.Task) string {
	switch t.Kind() {
	case model.KindDeadline:
		return "by " + model.DisplayDate(t.Due())
	case model.KindEvent:
		return t.From() + " - " + t.To()
	default:
		return ""
	}
}

type taskCounts struct {
	total   int
	done    int
	overdue int
}

// counts tallies the session's tasks. A pending deadline is overdue once
// its date is before today in UTC.
func (m Model) counts() taskCounts {
	var c taskCounts
	if m.Session == nil {
		return c
	}
	now := m.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, t := range m.Session.Tasks().Tasks() {
		c.total++
		if t.Done() {
			c.done++
			continue
		}
		if t.Kind() == model.KindDeadline && t.Due().Before(today) {
			c.overdue++
		}
	}
	return c
}

func (m Model) renderTasksPanel() string {
	c := m.counts()
	ratio := 0.0
	if c.total > 0 {
		ratio = float64(c.done) / float64(c.total)
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		TableView:    m.taskTable.View(),
		ProgressView: m.doneProgress.ViewAs(ratio),
		Total:        c.total,
		Done:         c.done,
		Overdue:      c.overdue,
	})
}
