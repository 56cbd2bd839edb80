package gamesessions

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entities.Session
}

// NewInMemoryRepository creates a new in-memory session repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		sessions: make(map[string]*entities.Session),
	}
}

// Create creates a new session
func (r *inMemoryRepository) Create(ctx context.Context, session *entities.Session) error {
	if err := validate(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return dnderr.AlreadyExistsf("session with ID %s already exists", session.ID).
			WithMeta("session_id", session.ID)
	}

	r.sessions[session.ID] = copySession(session)
	return nil
}

// Get retrieves a session by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, dnderr.NotFoundf("session not found: %s", id).
			WithMeta("session_id", id)
	}

	return copySession(session), nil
}

// Update updates an existing session
func (r *inMemoryRepository) Update(ctx context.Context, session *entities.Session) error {
	if err := validate(session); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; !exists {
		return dnderr.NotFoundf("session not found: %s", session.ID).
			WithMeta("session_id", session.ID)
	}

	r.sessions[session.ID] = copySession(session)
	return nil
}

// Delete removes a session
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return dnderr.NotFoundf("session not found: %s", id).
			WithMeta("session_id", id)
	}

	delete(r.sessions, id)
	return nil
}

// GetByRealm retrieves all sessions for a realm
func (r *inMemoryRepository) GetByRealm(ctx context.Context, realmID string) ([]*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := []*entities.Session{}
	for _, session := range r.sessions {
		if session.RealmID == realmID {
			sessions = append(sessions, copySession(session))
		}
	}

	return sessions, nil
}

// GetActiveByRealm retrieves the sessions of a realm that have not ended
func (r *inMemoryRepository) GetActiveByRealm(ctx context.Context, realmID string) ([]*entities.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := []*entities.Session{}
	for _, session := range r.sessions {
		if session.RealmID == realmID && isLive(session) {
			sessions = append(sessions, copySession(session))
		}
	}

	return sessions, nil
}

// copySession copies the session along with its pointer and map fields so
// callers cannot modify stored state
func copySession(s *entities.Session) *entities.Session {
	out := *s
	if s.Members != nil {
		out.Members = make(map[string]*entities.SessionMember, len(s.Members))
		for id, m := range s.Members {
			member := *m
			out.Members[id] = &member
		}
	}
	if s.PreviewDifficulty != nil {
		preview := *s.PreviewDifficulty
		out.PreviewDifficulty = &preview
	}
	if s.ActiveEncounterID != nil {
		encounter := *s.ActiveEncounterID
		out.ActiveEncounterID = &encounter
	}
	return &out
}
