package mutatorsets

//go:generate mockgen -destination=mock/mock_repository.go -package=mockmutatorsets -source=interface.go

import "context"

// Repository persists the names of the mutators enabled in each session so a
// restarted bot can replay them in resolved order
type Repository interface {
	// Get returns the enabled names of a session, empty when nothing is stored
	Get(ctx context.Context, sessionID string) ([]string, error)

	// Save replaces the enabled names of a session
	Save(ctx context.Context, sessionID string, names []string) error

	// Delete forgets the session
	Delete(ctx context.Context, sessionID string) error
}
