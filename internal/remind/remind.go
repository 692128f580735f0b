package remind

import (
	"context"
	"time"

	"github.com/Joseda-hg/todo/internal/model"
)

const DefaultWindow = 24 * time.Hour

type DueLister interface {
	ListDueBefore(ctx context.Context, threshold time.Time) ([]model.Task, error)
}

// DueSoon returns the tasks due within window of now, overdue ones included.
func DueSoon(ctx context.Context, store DueLister, now time.Time, window time.Duration) ([]model.Task, error) {
	if window <= 0 {
		window = DefaultWindow
	}
	return store.ListDueBefore(ctx, now.Add(window))
}
