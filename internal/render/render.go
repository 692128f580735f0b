package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Joseda-hg/todo/internal/due"
	"github.com/Joseda-hg/todo/internal/model"
)

func ListLine(task model.Task) string {
	if dueAt, ok := visibleDue(task); ok {
		return fmt.Sprintf("%d: '%s', due by %s", task.ID, task.Title, due.Format(dueAt))
	}
	return fmt.Sprintf("%d: '%s'", task.ID, task.Title)
}

func ListLines(tasks []model.Task) []string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, ListLine(task))
	}
	return lines
}

func Detail(task model.Task) string {
	lines := []string{
		fmt.Sprintf("Task title: '%s'", task.Title),
		fmt.Sprintf("Task notes: %s", task.Body),
	}
	if dueAt, ok := visibleDue(task); ok {
		lines = append(lines, fmt.Sprintf("This task is due on: %s", due.Format(dueAt)))
	}
	return strings.Join(lines, "\n")
}

// ReminderLine is ListLine followed by how far the deadline is from now.
func ReminderLine(task model.Task, now time.Time) string {
	dueAt, ok := visibleDue(task)
	if !ok {
		return ListLine(task)
	}
	return fmt.Sprintf("%s (%s)", ListLine(task), humanize.RelTime(dueAt, now, "ago", "from now"))
}

func visibleDue(task model.Task) (time.Time, bool) {
	if task.Due == nil || due.IsSentinel(*task.Due) {
		return time.Time{}, false
	}
	return *task.Due, true
}
