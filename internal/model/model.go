package model

import (
	"sort"
	"strings"
	"time"
)

type Task struct {
	ID    int64
	Title string
	Body  string
	Due   *time.Time
}

func (t Task) HasDue() bool {
	return t.Due != nil
}

type SortKey int

const (
	SortByID SortKey = iota
	SortByName
	SortByDate
)

// SortTasks reorders tasks in place. Ties keep their current relative order.
// Tasks without a deadline sort after every task that has one.
func SortTasks(tasks []Task, key SortKey) {
	switch key {
	case SortByName:
		sort.SliceStable(tasks, func(i, j int) bool {
			return strings.Compare(tasks[i].Title, tasks[j].Title) < 0
		})
	case SortByDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			return dueBefore(tasks[i].Due, tasks[j].Due)
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].ID < tasks[j].ID
		})
	}
}

func dueBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Before(*b)
	}
}
