package session

import (
	"context"
	"errors"
	"io"
	"log"
	"time"

	"github.com/Joseda-hg/todo/internal/db"
	"github.com/Joseda-hg/todo/internal/model"
	"github.com/Joseda-hg/todo/internal/remind"
	"github.com/Joseda-hg/todo/internal/render"
)

type Store interface {
	CreateTask(ctx context.Context, input db.TaskInput) (model.Task, error)
	GetTask(ctx context.Context, taskID int64) (model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	FilterByTitle(ctx context.Context, text string) ([]model.Task, error)
	UpdateTask(ctx context.Context, taskID int64, input db.TaskInput) (model.Task, error)
	DeleteTask(ctx context.Context, taskID int64) error
	ListDueBefore(ctx context.Context, threshold time.Time) ([]model.Task, error)
}

type Options struct {
	Logger       *log.Logger
	Now          func() time.Time
	RemindWindow time.Duration
}

type Session struct {
	store        Store
	console      Console
	logger       *log.Logger
	now          func() time.Time
	remindWindow time.Duration
}

const menuText = `
    To-Do
    You can:
    - VIEW a task
    - ADD a task
    - DELETE a task
    - MODIFY a task
    - EXIT from the program`

func New(store Store, console Console, opts Options) *Session {
	s := &Session{
		store:        store,
		console:      console,
		logger:       opts.Logger,
		now:          opts.Now,
		remindWindow: opts.RemindWindow,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.remindWindow <= 0 {
		s.remindWindow = remind.DefaultWindow
	}
	return s
}

// Run shows due-soon reminders and then serves the main menu until the user
// exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	if _, err := s.Remind(ctx); err != nil {
		s.reportError("check reminders", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.console.Println(menuText)
		input, err := s.console.Prompt("Enter a command: ")
		if err != nil {
			return endOfInput(err)
		}

		command := parseMenuCommand(input)
		if command == menuExit {
			s.logger.Printf("session: exit")
			return nil
		}
		if err := s.dispatch(ctx, command); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.reportError("command "+normalize(input), err)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, command menuCommand) error {
	switch command {
	case menuView:
		s.logger.Printf("session: view flow")
		return s.viewTasks(ctx)
	case menuAdd:
		s.logger.Printf("session: add flow")
		return s.addTask(ctx)
	case menuDelete:
		s.logger.Printf("session: delete flow")
		return s.deleteTask(ctx)
	case menuModify:
		s.logger.Printf("session: update flow")
		return s.updateTask(ctx)
	default:
		return nil
	}
}

// Remind prints the tasks due within the reminder window, if any, and
// reports how many there were.
func (s *Session) Remind(ctx context.Context) (int, error) {
	now := s.now()
	tasks, err := remind.DueSoon(ctx, s.store, now, s.remindWindow)
	if err != nil {
		return 0, err
	}
	s.logger.Printf("reminders: %d task(s) due before %s", len(tasks), now.Add(s.remindWindow).Format(time.RFC3339))
	if len(tasks) == 0 {
		return 0, nil
	}

	s.console.Println("IMPORTANT: You have tasks due soon.")
	for _, task := range tasks {
		s.console.Println(render.ReminderLine(task, now))
	}
	return len(tasks), nil
}

func (s *Session) printTasks(tasks []model.Task) {
	for _, line := range render.ListLines(tasks) {
		s.console.Println(line)
	}
}

func (s *Session) reportError(action string, err error) {
	s.logger.Printf("%s: %v", action, err)
	s.console.Println("Sorry, something went wrong: " + err.Error())
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
