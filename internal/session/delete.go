package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joseda-hg/todo/internal/db"
)

func (s *Session) deleteTask(ctx context.Context) error {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		s.console.Println("You have no tasks to delete.")
		return nil
	}

	s.console.Println("The following tasks can be deleted:")
	s.printTasks(tasks)

	id, err := s.promptID("Enter the ID of the task to delete: ", "Sorry, try again.")
	if err != nil {
		return err
	}

	input, err := s.console.Prompt(fmt.Sprintf("Are you SURE you want to delete task %d? This CANNOT be undone! (Y/N): ", id))
	if err != nil {
		return err
	}

	switch parseAnswer(input) {
	case answerYes:
		err := s.store.DeleteTask(ctx, id)
		if errors.Is(err, db.ErrNotFound) {
			s.console.Println("Hmm, there's no task with that ID. Nothing was deleted.")
			return nil
		}
		if err != nil {
			return err
		}
		s.logger.Printf("deleted task %d", id)
		s.console.Println("The task has been deleted.")
	case answerNo:
		s.console.Println("Cancelled.")
	default:
		s.console.Println("Ambiguous input, cancelled.")
	}
	return nil
}
