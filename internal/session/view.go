package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joseda-hg/todo/internal/db"
	"github.com/Joseda-hg/todo/internal/model"
	"github.com/Joseda-hg/todo/internal/render"
)

// viewTasks browses a working set that starts as every task. Filtering
// replaces the set; sorting reorders it in place.
func (s *Session) viewTasks(ctx context.Context) error {
	working, err := s.store.ListTasks(ctx)
	if err != nil {
		return err
	}
	if len(working) == 0 {
		s.console.Println("You have no tasks. Why not ADD one?")
		return nil
	}

	for {
		s.console.Println(fmt.Sprintf("You have %d tasks to do:", len(working)))
		s.printTasks(working)

		input, err := s.console.Prompt("Would you like to VIEW more info on a task, FILTER the tasks by name, change the SORT of the tasks, or are you DONE?: ")
		if err != nil {
			return err
		}

		switch parseViewCommand(input) {
		case viewDetail:
			if err := s.showTask(ctx); err != nil {
				return err
			}
		case viewFilter:
			text, err := s.console.Prompt("Please enter the text you would like to filter by (enter nothing to show all tasks): ")
			if err != nil {
				return err
			}
			working, err = s.store.FilterByTitle(ctx, text)
			if err != nil {
				return err
			}
		case viewSort:
			key, err := s.promptSortKey()
			if err != nil {
				return err
			}
			model.SortTasks(working, key)
		case viewDone:
			return nil
		}
	}
}

// showTask looks the id up in the whole store, not just the working set.
func (s *Session) showTask(ctx context.Context) error {
	id, err := s.promptID("Enter the ID of the task you would like to view: ", "Sorry, please enter that again.")
	if err != nil {
		return err
	}

	task, err := s.store.GetTask(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		s.console.Println("Hmm, there's no task with that ID. Please try again.")
		return nil
	}
	if err != nil {
		return err
	}

	s.console.Println()
	s.console.Println(render.Detail(task))
	s.console.Println()
	return nil
}
