package output

import (
	"context"

	"krushi/internal/domain/entities"
)

// ContactNotifier tells the site owners about a new submission.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, contact *entities.Contact) error
}

// Dispatcher runs jobs off the caller's goroutine. Dispatch returns an error
// only when the job could not be queued.
type Dispatcher interface {
	Dispatch(ctx context.Context, job func(ctx context.Context)) error
}
