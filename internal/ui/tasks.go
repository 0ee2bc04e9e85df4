package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todofile/internal/model"
)

const (
	progressWidth = 28
	maxTitleWidth = 80
)

// TaskLine styles one task: marker colored by state, text as-is.
func TaskLine(t model.Task) string {
	marker := current.Muted.Render(t.Marker())
	if t.IsCompleted {
		marker = current.Success.Render(t.Marker())
	}
	return marker + " " + truncate(t.Description, maxTitleWidth)
}

// Header summarizes the list: done, pending and total counts.
func Header(tasks []model.Task) string {
	d, p := model.Stats(tasks)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		current.Title.Render("Todos"),
		current.Success.Render("✔"), d,
		current.Pending.Render("•"), p,
		current.Accent.Render("Total"), len(tasks),
	)
}

// ListLines builds the panel body for tasks, optionally grouped by state.
func ListLines(tasks []model.Task, group bool) []string {
	d, p := model.Stats(tasks)
	lines := []string{
		Header(tasks),
		current.Muted.Render(ProgressBar(d, d+p, progressWidth)),
		"",
	}
	if group {
		lines = append(lines, groupLines(tasks)...)
	} else {
		lines = append(lines, flatLines(tasks)...)
	}
	return lines
}

func flatLines(tasks []model.Task) []string {
	if len(tasks) == 0 {
		return []string{current.Muted.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		idx := current.Muted.Render(fmt.Sprintf("%2d.", i+1))
		out = append(out, idx+" "+TaskLine(t))
	}
	return out
}

func groupLines(tasks []model.Task) []string {
	var pend, done []model.Task
	for _, t := range tasks {
		if t.IsCompleted {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	var lines []string
	lines = append(lines, current.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, current.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, current.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, current.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimRight(string(r[:max-3]), " ") + "..."
}
