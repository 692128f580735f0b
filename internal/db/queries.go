package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Joseda-hg/todo/internal/due"
)

type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Todo mirrors a row of the todo table. TaskDue is never zero: rows without
// a deadline carry the sentinel.
type Todo struct {
	TaskID    int64
	TaskTitle string
	TaskBody  string
	TaskDue   time.Time
}

const createTodo = `INSERT INTO todo (task_title, task_body, task_due) VALUES (?, ?, ?)
RETURNING task_id, task_title, task_body, task_due`

type CreateTodoParams struct {
	TaskTitle string
	TaskBody  string
	TaskDue   time.Time
}

func (q *Queries) CreateTodo(ctx context.Context, arg CreateTodoParams) (Todo, error) {
	row := q.db.QueryRowContext(ctx, createTodo, arg.TaskTitle, arg.TaskBody, due.Format(arg.TaskDue))
	return scanTodo(row)
}

const getTodo = `SELECT task_id, task_title, task_body, task_due FROM todo WHERE task_id = ?`

func (q *Queries) GetTodo(ctx context.Context, taskID int64) (Todo, error) {
	row := q.db.QueryRowContext(ctx, getTodo, taskID)
	return scanTodo(row)
}

const listTodos = `SELECT task_id, task_title, task_body, task_due FROM todo ORDER BY task_id`

func (q *Queries) ListTodos(ctx context.Context) ([]Todo, error) {
	return q.queryTodos(ctx, listTodos)
}

const listTodosByTitle = `SELECT task_id, task_title, task_body, task_due FROM todo
WHERE task_title LIKE ? ESCAPE '\' ORDER BY task_id`

func (q *Queries) ListTodosByTitle(ctx context.Context, pattern string) ([]Todo, error) {
	return q.queryTodos(ctx, listTodosByTitle, pattern)
}

const listTodosDueBefore = `SELECT task_id, task_title, task_body, task_due FROM todo
WHERE task_due <= ? ORDER BY task_due, task_id`

func (q *Queries) ListTodosDueBefore(ctx context.Context, threshold time.Time) ([]Todo, error) {
	return q.queryTodos(ctx, listTodosDueBefore, due.Format(threshold))
}

const updateTodo = `UPDATE todo SET task_title = ?, task_body = ?, task_due = ? WHERE task_id = ?`

type UpdateTodoParams struct {
	TaskTitle string
	TaskBody  string
	TaskDue   time.Time
	TaskID    int64
}

func (q *Queries) UpdateTodo(ctx context.Context, arg UpdateTodoParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateTodo, arg.TaskTitle, arg.TaskBody, due.Format(arg.TaskDue), arg.TaskID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteTodo = `DELETE FROM todo WHERE task_id = ?`

func (q *Queries) DeleteTodo(ctx context.Context, taskID int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTodo, taskID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (q *Queries) queryTodos(ctx context.Context, query string, args ...interface{}) ([]Todo, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Todo
	for rows.Next() {
		item, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTodo(row scanner) (Todo, error) {
	var item Todo
	var dueValue dueColumn
	if err := row.Scan(&item.TaskID, &item.TaskTitle, &item.TaskBody, &dueValue); err != nil {
		return Todo{}, err
	}
	item.TaskDue = dueValue.Time
	return item, nil
}

// dueColumn accepts both the text written by this package and the time.Time
// the driver produces for TIMESTAMP columns.
type dueColumn struct {
	Time time.Time
}

func (d *dueColumn) Scan(src interface{}) error {
	switch value := src.(type) {
	case nil:
		d.Time = due.Sentinel()
		return nil
	case time.Time:
		d.Time = time.Date(value.Year(), value.Month(), value.Day(), value.Hour(), value.Minute(), value.Second(), 0, time.Local)
		return nil
	case string:
		return d.parse(value)
	case []byte:
		return d.parse(string(value))
	default:
		return fmt.Errorf("unsupported task_due type %T", src)
	}
}

func (d *dueColumn) parse(value string) error {
	parsed, err := due.Parse(value)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
