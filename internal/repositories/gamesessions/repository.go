package gamesessions

//go:generate mockgen -destination=mock/mock_repository.go -package=mockgamesessions -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// Repository defines the interface for game session storage
type Repository interface {
	// Create creates a new session
	Create(ctx context.Context, session *entities.Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*entities.Session, error)

	// Update updates an existing session
	Update(ctx context.Context, session *entities.Session) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error

	// GetByRealm retrieves all sessions for a realm (Discord server)
	GetByRealm(ctx context.Context, realmID string) ([]*entities.Session, error)

	// GetActiveByRealm retrieves the sessions of a realm that have not ended
	GetActiveByRealm(ctx context.Context, realmID string) ([]*entities.Session, error)
}

func isLive(s *entities.Session) bool {
	return s.Status == entities.SessionStatusPlanning ||
		s.Status == entities.SessionStatusActive ||
		s.Status == entities.SessionStatusPaused
}

func validate(s *entities.Session) error {
	if s == nil {
		return dnderr.InvalidArgument("session cannot be nil")
	}
	if s.ID == "" {
		return dnderr.InvalidArgument("session ID cannot be empty")
	}
	return nil
}
