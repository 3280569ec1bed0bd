package views

import (
	"fmt"
	"strings"
)

type TasksPanelData struct {
	TableView    string
	ProgressView string
	Total        int
	Done         int
	Overdue      int
}

type HelpPanelData struct {
	CommandsView string
	HelpView     string
}

func RenderTasksPanel(data TasksPanelData) string {
	if data.Total == 0 {
		return "tasks:\n(empty)"
	}
	lines := []string{
		fmt.Sprintf("tasks: %d | done: %d | pending: %d", data.Total, data.Done, data.Total-data.Done),
	}
	if data.Overdue > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("overdue deadlines: %d", data.Overdue)))
	}
	if data.ProgressView != "" {
		lines = append(lines, data.ProgressView)
	}
	lines = append(lines, "", data.TableView)
	return strings.Join(lines, "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	lines := []string{"help:"}
	if strings.TrimSpace(data.CommandsView) != "" {
		lines = append(lines, data.CommandsView)
	}
	if strings.TrimSpace(data.HelpView) != "" {
		lines = append(lines, "", data.HelpView)
	}
	return strings.Join(lines, "\n")
}
