package session

import (
	"strconv"
	"strings"
	"time"

	"github.com/Joseda-hg/todo/internal/due"
	"github.com/Joseda-hg/todo/internal/model"
)

func (s *Session) promptID(text, retry string) (int64, error) {
	for {
		input, err := s.console.Prompt(text)
		if err != nil {
			return 0, err
		}
		id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
		if err == nil {
			return id, nil
		}
		s.console.Println(retry)
	}
}

func (s *Session) promptSortKey() (model.SortKey, error) {
	for {
		input, err := s.console.Prompt("Would you like to sort by ID (default), NAME, or DATE?: ")
		if err != nil {
			return model.SortByID, err
		}
		if key, ok := parseSortKey(input); ok {
			return key, nil
		}
	}
}

// promptDeadline asks whether the task has a deadline and, if so, reads it.
// A nil result means no deadline.
func (s *Session) promptDeadline() (*time.Time, error) {
	for {
		input, err := s.console.Prompt("Does this task have a deadline? (Y/N): ")
		if err != nil {
			return nil, err
		}
		switch parseAnswer(input) {
		case answerYes:
			dueAt, err := s.promptDate()
			if err != nil {
				return nil, err
			}
			return &dueAt, nil
		case answerNo:
			return nil, nil
		}
	}
}

func (s *Session) promptDate() (time.Time, error) {
	questions := []string{
		"Enter the day it is due (1-31): ",
		"Enter the month it is due (1-12): ",
		"Enter the year it is due: ",
		"Enter the hour it is due (0-23, 24hr): ",
		"Enter the minute it is due (0-59): ",
	}

	for {
		answers := make([]string, len(questions))
		for i, question := range questions {
			input, err := s.console.Prompt(question)
			if err != nil {
				return time.Time{}, err
			}
			answers[i] = input
		}

		dueAt, err := due.ParseComponents(answers[0], answers[1], answers[2], answers[3], answers[4])
		if err == nil {
			return dueAt, nil
		}
		s.logger.Printf("date entry: %v", err)
		s.console.Println("Sorry, there was an error with your input.")
		s.console.Println("Please try again.")
	}
}
