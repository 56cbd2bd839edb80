package session

//go:generate mockgen -destination=mock/mock_service.go -package=mocksession -source=service.go

import (
	"context"
	"strings"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/gamesessions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/uuid"
)

// Repository is an alias for the game session repository interface
type Repository = gamesessions.Repository

// Service defines the session service interface
type Service interface {
	// CreateSession creates a new game session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*entities.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, sessionID string) (*entities.Session, error)

	// JoinSession adds a user to a session
	JoinSession(ctx context.Context, sessionID, userID string) (*entities.SessionMember, error)

	// StartSession begins a game session
	StartSession(ctx context.Context, sessionID, userID string) error

	// PauseSession pauses a game session
	PauseSession(ctx context.Context, sessionID, userID string) error

	// ResumeSession resumes a paused session
	ResumeSession(ctx context.Context, sessionID, userID string) error

	// EndSession concludes a game session
	EndSession(ctx context.Context, sessionID, userID string) error

	// BeginEncounter locks mutator activation until the encounter finishes
	BeginEncounter(ctx context.Context, sessionID, userID, encounterID string) error

	// FinishEncounter releases the encounter lock
	FinishEncounter(ctx context.Context, sessionID, userID string) error

	// ListActiveRealmSessions lists the sessions of a realm that have not ended
	ListActiveRealmSessions(ctx context.Context, realmID string) ([]*entities.Session, error)

	// FindActiveForChannel returns the live session bound to a channel
	FindActiveForChannel(ctx context.Context, realmID, channelID string) (*entities.Session, error)
}

// CreateSessionInput contains data for creating a session
type CreateSessionInput struct {
	Name       string
	RealmID    string
	ChannelID  string
	CreatorID  string
	Difficulty entities.Difficulty // Optional, defaults to medium
}

// service implements the Service interface
type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository     // Required
	UUIDGenerator uuid.Generator // Optional, will use default if nil
}

// NewService creates a new session service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository: cfg.Repository,
	}

	// Use provided UUID generator or create default
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// CreateSession creates a new game session
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*entities.Session, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}

	// Validate input
	if strings.TrimSpace(input.Name) == "" {
		return nil, dnderr.InvalidArgument("session name is required")
	}
	if strings.TrimSpace(input.RealmID) == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}
	if strings.TrimSpace(input.ChannelID) == "" {
		return nil, dnderr.InvalidArgument("channel ID is required")
	}
	if strings.TrimSpace(input.CreatorID) == "" {
		return nil, dnderr.InvalidArgument("creator ID is required")
	}
	if input.Difficulty != "" && !input.Difficulty.IsValid() {
		return nil, dnderr.InvalidArgumentf("unknown difficulty '%s'", input.Difficulty)
	}

	existing, err := s.FindActiveForChannel(ctx, input.RealmID, input.ChannelID)
	if err != nil && !dnderr.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, dnderr.AlreadyExistsf("channel already runs session '%s'", existing.Name).
			WithMeta("session_id", existing.ID).
			WithMeta("channel_id", input.ChannelID)
	}

	sessionID := s.uuidGenerator.New()

	session := entities.NewSession(sessionID, input.Name, input.RealmID, input.ChannelID, input.CreatorID)
	if input.Difficulty != "" {
		session.Difficulty = input.Difficulty
	}

	if err := s.repository.Create(ctx, session); err != nil {
		return nil, dnderr.Wrap(err, "failed to create session").
			WithMeta("session_id", sessionID).
			WithMeta("session_name", input.Name)
	}

	return session, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, sessionID string) (*entities.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, dnderr.InvalidArgument("session ID is required")
	}

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get session '%s'", sessionID).
			WithMeta("session_id", sessionID)
	}

	return session, nil
}

// JoinSession adds a user to a session
func (s *service) JoinSession(ctx context.Context, sessionID, userID string) (*entities.SessionMember, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, dnderr.InvalidArgument("user ID is required")
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsMember(userID) {
		return nil, dnderr.AlreadyExistsf("user is already in the session").
			WithMeta("user_id", userID).
			WithMeta("session_id", sessionID)
	}
	if session.Status == entities.SessionStatusEnded {
		return nil, dnderr.InvalidStatef("cannot join an ended session").
			WithMeta("session_id", sessionID).
			WithMeta("status", string(session.Status))
	}

	// Add as player by default
	member := session.AddMember(userID, entities.SessionRolePlayer)

	if err := s.repository.Update(ctx, session); err != nil {
		return nil, dnderr.Wrap(err, "failed to update session").
			WithMeta("session_id", sessionID)
	}

	return member, nil
}

// StartSession begins a game session
func (s *service) StartSession(ctx context.Context, sessionID, userID string) error {
	return s.transition(ctx, sessionID, userID, "start the session", (*entities.Session).Start)
}

// PauseSession pauses a game session
func (s *service) PauseSession(ctx context.Context, sessionID, userID string) error {
	return s.transition(ctx, sessionID, userID, "pause the session", (*entities.Session).Pause)
}

// ResumeSession resumes a paused session
func (s *service) ResumeSession(ctx context.Context, sessionID, userID string) error {
	return s.transition(ctx, sessionID, userID, "resume the session", (*entities.Session).Resume)
}

// EndSession concludes a game session
func (s *service) EndSession(ctx context.Context, sessionID, userID string) error {
	return s.transition(ctx, sessionID, userID, "end the session", (*entities.Session).End)
}

// BeginEncounter marks an encounter as running
func (s *service) BeginEncounter(ctx context.Context, sessionID, userID, encounterID string) error {
	if strings.TrimSpace(encounterID) == "" {
		return dnderr.InvalidArgument("encounter ID is required")
	}
	return s.transition(ctx, sessionID, userID, "begin an encounter", func(sess *entities.Session) bool {
		return sess.BeginEncounter(encounterID)
	})
}

// FinishEncounter clears the running encounter
func (s *service) FinishEncounter(ctx context.Context, sessionID, userID string) error {
	return s.transition(ctx, sessionID, userID, "finish the encounter", (*entities.Session).FinishEncounter)
}

// transition loads the session, checks the DM and applies a state change
func (s *service) transition(ctx context.Context, sessionID, userID, action string, apply func(*entities.Session) bool) error {
	if strings.TrimSpace(userID) == "" {
		return dnderr.InvalidArgument("user ID is required")
	}

	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if !session.IsDM(userID) {
		return dnderr.PermissionDeniedf("only the DM can %s", action).
			WithMeta("user_id", userID).
			WithMeta("session_id", sessionID)
	}

	if !apply(session) {
		return dnderr.InvalidStatef("cannot %s in current state", action).
			WithMeta("session_id", sessionID).
			WithMeta("status", string(session.Status))
	}

	if err := s.repository.Update(ctx, session); err != nil {
		return dnderr.Wrap(err, "failed to update session").
			WithMeta("session_id", sessionID)
	}

	return nil
}

// ListActiveRealmSessions lists active sessions for a realm
func (s *service) ListActiveRealmSessions(ctx context.Context, realmID string) ([]*entities.Session, error) {
	if strings.TrimSpace(realmID) == "" {
		return nil, dnderr.InvalidArgument("realm ID is required")
	}

	sessions, err := s.repository.GetActiveByRealm(ctx, realmID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to list active sessions for realm '%s'", realmID).
			WithMeta("realm_id", realmID)
	}

	return sessions, nil
}

// FindActiveForChannel returns the live session bound to a channel
func (s *service) FindActiveForChannel(ctx context.Context, realmID, channelID string) (*entities.Session, error) {
	sessions, err := s.ListActiveRealmSessions(ctx, realmID)
	if err != nil {
		return nil, err
	}

	for _, sess := range sessions {
		if sess.ChannelID == channelID {
			return sess, nil
		}
	}

	return nil, dnderr.NotFoundf("no session is running in this channel").
		WithMeta("realm_id", realmID).
		WithMeta("channel_id", channelID)
}
