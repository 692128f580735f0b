package session

import (
	"context"
	"errors"
	"time"

	"github.com/Joseda-hg/todo/internal/db"
	"github.com/Joseda-hg/todo/internal/model"
)

var errDraftClosed = errors.New("draft already committed or discarded")

// Draft is a scratch copy of a task's fields. Nothing reaches the store until
// Commit; Discard drops the edits. Either call closes the draft.
type Draft struct {
	id     int64
	Title  string
	Body   string
	Due    *time.Time
	closed bool
}

func NewDraft() *Draft {
	return &Draft{}
}

func DraftOf(task model.Task) *Draft {
	draft := &Draft{id: task.ID, Title: task.Title, Body: task.Body}
	if task.Due != nil {
		dueAt := *task.Due
		draft.Due = &dueAt
	}
	return draft
}

func (d *Draft) Task() model.Task {
	return model.Task{ID: d.id, Title: d.Title, Body: d.Body, Due: d.Due}
}

// Commit creates the task when the draft is new and replaces the stored
// fields otherwise.
func (d *Draft) Commit(ctx context.Context, store Store) (model.Task, error) {
	if d.closed {
		return model.Task{}, errDraftClosed
	}
	input := db.TaskInput{Title: d.Title, Body: d.Body, Due: d.Due}

	var saved model.Task
	var err error
	if d.id == 0 {
		saved, err = store.CreateTask(ctx, input)
	} else {
		saved, err = store.UpdateTask(ctx, d.id, input)
	}
	if err != nil {
		return model.Task{}, err
	}
	d.closed = true
	return saved, nil
}

func (d *Draft) Discard() {
	d.closed = true
}
