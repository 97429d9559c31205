package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	editingMarker = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Render(" (editing)")
)

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tasktrack"))
	b.WriteString("  " + helpStyle.Render(a.filterLabel()+" · "+a.rec.Sort()))
	b.WriteString("\n\n")

	tasks := a.rec.Tasks()
	if len(tasks) == 0 {
		b.WriteString(helpStyle.Render("  no tasks on this page") + "\n")
	}
	editID, editing := a.rec.Editing()
	for i, t := range tasks {
		prefix := "  "
		if i == a.cursor && a.mode == modeList {
			prefix = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", prefix, box, t.Title)
		if t.Completed {
			line = doneStyle.Render(line)
		}
		if editing && t.ID == editID {
			line += editingMarker
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("page %d/%d · %d total", a.rec.Page(), max(a.rec.TotalPages(), 1), a.rec.Total())))
	b.WriteString("\n")

	switch a.mode {
	case modeAdd:
		b.WriteString("\nNew task: " + a.input.View() + "\n")
	case modeEdit:
		b.WriteString("\nRename: " + a.input.View() + "\n")
	default:
		b.WriteString("\n" + helpStyle.Render("a add · e edit · space toggle · d delete · ←/→ page · f filter · s sort · r reload · q quit") + "\n")
	}

	if a.status != "" {
		b.WriteString("\n" + statusStyle.Render(a.status) + "\n")
	}
	return b.String()
}

func (a *App) filterLabel() string {
	switch f := a.rec.Filter(); {
	case f == nil:
		return "all"
	case *f:
		return "completed"
	default:
		return "active"
	}
}
