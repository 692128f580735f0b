package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestCreateTaskRoundTrip(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	dueAt := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.Local)
	created, err := store.CreateTask(ctx, TaskInput{Title: "Write tests", Body: "Add coverage", Due: &dueAt})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected task ID to be set")
	}

	loaded, err := store.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if loaded.Title != "Write tests" || loaded.Body != "Add coverage" {
		t.Fatalf("unexpected fields %+v", loaded)
	}
	if loaded.Due == nil || !loaded.Due.Equal(dueAt) {
		t.Fatalf("expected due %v, got %v", dueAt, loaded.Due)
	}

	other, err := store.CreateTask(ctx, TaskInput{Title: "Second"})
	if err != nil {
		t.Fatalf("create second task: %v", err)
	}
	if other.ID == created.ID {
		t.Fatalf("expected a fresh id, got %d twice", other.ID)
	}
}

func TestCreateTaskWithoutDueDate(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.CreateTask(ctx, TaskInput{Title: "Buy milk", Body: "2%"}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" {
		t.Fatalf("expected title 'Buy milk', got %q", tasks[0].Title)
	}
	if tasks[0].Due != nil {
		t.Fatalf("expected no due date, got %v", tasks[0].Due)
	}
}

func TestIDsAreNotReused(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	first, _ := store.CreateTask(ctx, TaskInput{Title: "one"})
	second, _ := store.CreateTask(ctx, TaskInput{Title: "two"})
	if err := store.DeleteTask(ctx, second.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	third, err := store.CreateTask(ctx, TaskInput{Title: "three"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if third.ID <= second.ID || third.ID <= first.ID {
		t.Fatalf("expected id greater than %d, got %d", second.ID, third.ID)
	}
}

func TestUpdateTaskReplacesFields(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	dueAt := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)
	created, err := store.CreateTask(ctx, TaskInput{Title: "Old", Body: "old notes", Due: &dueAt})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	updated, err := store.UpdateTask(ctx, created.ID, TaskInput{Title: "New", Body: "new notes"})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Title != "New" || updated.Body != "new notes" || updated.Due != nil {
		t.Fatalf("unexpected update result %+v", updated)
	}

	reloaded, err := store.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if reloaded.Title != "New" || reloaded.Due != nil {
		t.Fatalf("expected update to persist, got %+v", reloaded)
	}

	if _, err := store.UpdateTask(ctx, created.ID+100, TaskInput{Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	created, err := store.CreateTask(ctx, TaskInput{Title: "Delete me"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	kept, err := store.CreateTask(ctx, TaskInput{Title: "Keep me"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := store.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := store.GetTask(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteTask(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != kept.ID {
		t.Fatalf("expected only task %d to remain, got %+v", kept.ID, tasks)
	}
}

func TestFilterByTitle(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	for _, title := range []string{"Buy milk", "Call mum", "buy bread", "50% off sale"} {
		if _, err := store.CreateTask(ctx, TaskInput{Title: title}); err != nil {
			t.Fatalf("create task %q: %v", title, err)
		}
	}

	all, err := store.FilterByTitle(ctx, "")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	listed, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != len(listed) {
		t.Fatalf("expected empty filter to match all %d tasks, got %d", len(listed), len(all))
	}

	buys, err := store.FilterByTitle(ctx, "buy")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(buys) != 2 {
		t.Fatalf("expected 2 matches for 'buy', got %d", len(buys))
	}

	percent, err := store.FilterByTitle(ctx, "0%")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(percent) != 1 || percent[0].Title != "50% off sale" {
		t.Fatalf("expected literal percent match, got %+v", percent)
	}
}

func TestListDueBefore(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	early := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	late := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local)
	first, _ := store.CreateTask(ctx, TaskInput{Title: "early", Due: &early})
	if _, err := store.CreateTask(ctx, TaskInput{Title: "late", Due: &late}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := store.CreateTask(ctx, TaskInput{Title: "never"}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	tasks, err := store.ListDueBefore(ctx, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("list due before: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != first.ID {
		t.Fatalf("expected only the early task, got %+v", tasks)
	}

	inclusive, err := store.ListDueBefore(ctx, early)
	if err != nil {
		t.Fatalf("list due before: %v", err)
	}
	if len(inclusive) != 1 {
		t.Fatalf("expected threshold to be inclusive, got %d tasks", len(inclusive))
	}

	farFuture, err := store.ListDueBefore(ctx, time.Date(9000, time.January, 1, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("list due before: %v", err)
	}
	if len(farFuture) != 2 {
		t.Fatalf("expected undated task to be excluded, got %d tasks", len(farFuture))
	}
}

func TestReadsLegacyTimestamps(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.DB.ExecContext(ctx, "INSERT INTO todo (task_title, task_body, task_due) VALUES ('legacy', '', '2024-03-01 08:30:00'), ('legacy none', '', '9999-12-31 00:00:00')"); err != nil {
		t.Fatalf("insert legacy rows: %v", err)
	}

	tasks, err := store.ListTasks(ctx)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Due == nil || tasks[0].Due.Hour() != 8 || tasks[0].Due.Minute() != 30 {
		t.Fatalf("expected 08:30 due time, got %v", tasks[0].Due)
	}
	if tasks[1].Due != nil {
		t.Fatalf("expected legacy sentinel to read as no due date, got %v", tasks[1].Due)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	store := NewStore(first)
	if _, err := store.CreateTask(context.Background(), TaskInput{Title: "persisted"}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen db: %v", err)
	}
	defer second.Close()

	tasks, err := NewStore(second).ListTasks(context.Background())
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "persisted" {
		t.Fatalf("expected persisted task after reopen, got %+v", tasks)
	}
}

func TestOpenUnavailableLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "todo.db")
	if _, err := Open(path); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := Open(""); !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable for empty path, got %v", err)
	}
}

func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return NewStore(db), func() {
		_ = db.Close()
	}
}
