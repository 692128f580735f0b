package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Joseda-hg/todo/internal/due"
	"github.com/Joseda-hg/todo/internal/model"
)

var ErrNotFound = errors.New("task not found")

type Store struct {
	DB      *sql.DB
	Queries *Queries
}

type TaskInput struct {
	Title string
	Body  string
	Due   *time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db, Queries: New(db)}
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) CreateTask(ctx context.Context, input TaskInput) (model.Task, error) {
	created, err := s.Queries.CreateTodo(ctx, CreateTodoParams{
		TaskTitle: input.Title,
		TaskBody:  input.Body,
		TaskDue:   storedDue(input.Due),
	})
	if err != nil {
		return model.Task{}, err
	}
	return mapTask(created), nil
}

func (s *Store) GetTask(ctx context.Context, taskID int64) (model.Task, error) {
	row, err := s.Queries.GetTodo(ctx, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, ErrNotFound
	}
	if err != nil {
		return model.Task{}, err
	}
	return mapTask(row), nil
}

func (s *Store) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.Queries.ListTodos(ctx)
	if err != nil {
		return nil, err
	}
	return mapTasks(rows), nil
}

// FilterByTitle returns tasks whose title contains text. Matching follows
// SQLite LIKE, so it ignores ASCII case. An empty text matches every task.
func (s *Store) FilterByTitle(ctx context.Context, text string) ([]model.Task, error) {
	rows, err := s.Queries.ListTodosByTitle(ctx, "%"+escapeLike(text)+"%")
	if err != nil {
		return nil, err
	}
	return mapTasks(rows), nil
}

// ListDueBefore returns tasks due at or before threshold, earliest first.
func (s *Store) ListDueBefore(ctx context.Context, threshold time.Time) ([]model.Task, error) {
	rows, err := s.Queries.ListTodosDueBefore(ctx, threshold)
	if err != nil {
		return nil, err
	}
	return mapTasks(rows), nil
}

func (s *Store) UpdateTask(ctx context.Context, taskID int64, input TaskInput) (model.Task, error) {
	affected, err := s.Queries.UpdateTodo(ctx, UpdateTodoParams{
		TaskTitle: input.Title,
		TaskBody:  input.Body,
		TaskDue:   storedDue(input.Due),
		TaskID:    taskID,
	})
	if err != nil {
		return model.Task{}, err
	}
	if affected == 0 {
		return model.Task{}, ErrNotFound
	}
	return s.GetTask(ctx, taskID)
}

func (s *Store) DeleteTask(ctx context.Context, taskID int64) error {
	affected, err := s.Queries.DeleteTodo(ctx, taskID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func mapTask(row Todo) model.Task {
	task := model.Task{
		ID:    row.TaskID,
		Title: row.TaskTitle,
		Body:  row.TaskBody,
	}
	if !due.IsSentinel(row.TaskDue) {
		dueAt := row.TaskDue
		task.Due = &dueAt
	}
	return task
}

func mapTasks(rows []Todo) []model.Task {
	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTask(row))
	}
	return tasks
}

func storedDue(value *time.Time) time.Time {
	if value == nil {
		return due.Sentinel()
	}
	return *value
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(text string) string {
	return likeEscaper.Replace(text)
}
