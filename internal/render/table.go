package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msageha/taskscribe/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	taskStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	priorityColors = map[model.Priority]lipgloss.Style{
		model.PriorityCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		model.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		model.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		model.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
)

// Table renders the result for a terminal, one bordered card per task.
func Table(result model.PipelineResult) string {
	var sb strings.Builder

	if !result.Success {
		sb.WriteString(errorStyle.Render("Pipeline failed: " + result.ErrorMessage))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Meeting Tasks (%d)", len(result.Tasks))))
	sb.WriteString("\n")

	if len(result.Tasks) == 0 {
		sb.WriteString(dimStyle.Render("No actionable tasks found in the transcript."))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, t := range result.Tasks {
		sb.WriteString(taskStyle.Render(renderTask(t)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderTask(t model.Task) string {
	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("Task #%d", t.TaskNumber))+" "+t.Description)

	pStyle, ok := priorityColors[t.Priority]
	if !ok {
		pStyle = dimStyle
	}
	lines = append(lines, "Priority:    "+pStyle.Render(string(t.Priority)))

	if t.AssignedTo != nil {
		lines = append(lines, "Assigned to: "+*t.AssignedTo)
	} else {
		lines = append(lines, "Assigned to: "+dimStyle.Render("unassigned"))
	}
	if t.Deadline != nil {
		lines = append(lines, "Deadline:    "+*t.Deadline)
	}
	if len(t.Dependencies) > 0 {
		parts := make([]string, len(t.Dependencies))
		for i, d := range t.Dependencies {
			parts[i] = fmt.Sprintf("Task #%d", d)
		}
		lines = append(lines, "Depends on:  "+strings.Join(parts, ", "))
	}
	if t.Reasoning != "" {
		lines = append(lines, dimStyle.Render(t.Reasoning))
	}
	return strings.Join(lines, "\n")
}
