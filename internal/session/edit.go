package session

import (
	"context"
	"errors"

	"github.com/Joseda-hg/todo/internal/db"
	"github.com/Joseda-hg/todo/internal/due"
	"github.com/Joseda-hg/todo/internal/render"
)

// addTask has no way out other than "ok": once started it always creates a task.
func (s *Session) addTask(ctx context.Context) error {
	draft := NewDraft()

	var err error
	if draft.Title, err = s.console.Prompt("Enter task name: "); err != nil {
		return err
	}
	if draft.Body, err = s.console.Prompt("Enter task notes: "); err != nil {
		return err
	}
	if draft.Due, err = s.promptDeadline(); err != nil {
		return err
	}

	for {
		s.console.Println("Task name: " + draft.Title)
		s.console.Println("Task notes: " + draft.Body)
		if draft.Due != nil {
			s.console.Println("Task due date: " + due.Format(*draft.Due))
		}

		command, err := s.promptAddCommand()
		if err != nil {
			return err
		}

		switch command {
		case addName:
			if draft.Title, err = s.console.Prompt("Enter new task name: "); err != nil {
				return err
			}
		case addNotes:
			if draft.Body, err = s.console.Prompt("Enter new task notes: "); err != nil {
				return err
			}
		case addDate:
			if draft.Due, err = s.promptDeadline(); err != nil {
				return err
			}
		case addOK:
			created, err := draft.Commit(ctx, s.store)
			if err != nil {
				return err
			}
			s.logger.Printf("created task %d", created.ID)
			s.console.Println("Task added.")
			return nil
		}
	}
}

func (s *Session) promptAddCommand() (addCommand, error) {
	for {
		input, err := s.console.Prompt("Would you like to change anything, or is this OK? (name, notes, date, ok): ")
		if err != nil {
			return addStay, err
		}
		if command := parseAddCommand(input); command != addStay {
			return command, nil
		}
	}
}

// updateTask edits a Draft of one task. An unknown id ends the flow instead
// of asking again.
func (s *Session) updateTask(ctx context.Context) error {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		s.console.Println("You have no tasks to update.")
		return nil
	}

	s.console.Println("The following tasks can be updated:")
	s.printTasks(tasks)

	id, err := s.promptID("Enter the ID of the task to modify: ", "Sorry, try again.")
	if err != nil {
		return err
	}

	task, err := s.store.GetTask(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		s.console.Println("Hmm, there's no task with that ID.")
		return nil
	}
	if err != nil {
		return err
	}

	draft := DraftOf(task)
	for {
		s.console.Println()
		s.console.Println(render.Detail(draft.Task()))
		s.console.Println()

		input, err := s.console.Prompt("Would you like to change the TITLE, NOTES or DATE, are you DONE, or would you like to CANCEL?: ")
		if err != nil {
			return err
		}

		switch parseUpdateCommand(input) {
		case updateTitle:
			if draft.Title, err = s.console.Prompt("Please enter the new title: "); err != nil {
				return err
			}
		case updateNotes:
			if draft.Body, err = s.console.Prompt("Please enter the new notes: "); err != nil {
				return err
			}
		case updateDate:
			dueAt, err := s.promptDate()
			if err != nil {
				return err
			}
			draft.Due = &dueAt
		case updateDone:
			if _, err := draft.Commit(ctx, s.store); err != nil {
				if errors.Is(err, db.ErrNotFound) {
					s.console.Println("Hmm, that task no longer exists.")
					return nil
				}
				return err
			}
			s.logger.Printf("updated task %d", id)
			s.console.Println("Task updated.")
			return nil
		case updateCancel:
			draft.Discard()
			s.console.Println("Cancelled, no changes were saved.")
			return nil
		}
	}
}
