package entities

import (
	"time"
)

// SessionStatus represents the current state of a game session
type SessionStatus string

const (
	SessionStatusPlanning SessionStatus = "planning" // Session is being set up
	SessionStatusActive   SessionStatus = "active"   // Session is in progress
	SessionStatusPaused   SessionStatus = "paused"   // Session is temporarily paused
	SessionStatusEnded    SessionStatus = "ended"    // Session has concluded
)

// SessionMemberRole represents a member's role in the session
type SessionMemberRole string

const (
	SessionRoleDM        SessionMemberRole = "dm"        // Dungeon Master
	SessionRolePlayer    SessionMemberRole = "player"    // Player
	SessionRoleSpectator SessionMemberRole = "spectator" // Observer (can't participate)
)

// Session represents a D&D game session
type Session struct {
	ID                string                    `json:"id"`
	Name              string                    `json:"name"`
	RealmID           string                    `json:"realm_id"`   // Discord server ID
	ChannelID         string                    `json:"channel_id"` // Discord channel where session is active
	CreatorID         string                    `json:"creator_id"`
	DMID              string                    `json:"dm_id"` // Current DM (can be different from creator)
	Status            SessionStatus             `json:"status"`
	Members           map[string]*SessionMember `json:"members"` // UserID -> Member
	Difficulty        Difficulty                `json:"difficulty,omitempty"`
	PreviewDifficulty *Difficulty               `json:"preview_difficulty,omitempty"` // Lobby selection not yet applied
	ActiveEncounterID *string                   `json:"active_encounter_id,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	LastActive        time.Time                 `json:"last_active"`
}

// SessionMember represents a participant in a session
type SessionMember struct {
	UserID   string            `json:"user_id"`
	Role     SessionMemberRole `json:"role"`
	JoinedAt time.Time         `json:"joined_at"`
	IsActive bool              `json:"is_active"`
}

// NewSession creates a new session in planning state with the creator as DM
func NewSession(id, name, realmID, channelID, creatorID string) *Session {
	now := time.Now()
	s := &Session{
		ID:         id,
		Name:       name,
		RealmID:    realmID,
		ChannelID:  channelID,
		CreatorID:  creatorID,
		DMID:       creatorID, // Creator is DM by default
		Status:     SessionStatusPlanning,
		Members:    make(map[string]*SessionMember),
		Difficulty: DifficultyMedium,
		CreatedAt:  now,
		LastActive: now,
	}
	s.AddMember(creatorID, SessionRoleDM)
	return s
}

// AddMember adds a new member to the session
func (s *Session) AddMember(userID string, role SessionMemberRole) *SessionMember {
	if s.Members == nil {
		s.Members = make(map[string]*SessionMember)
	}
	member := &SessionMember{
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
		IsActive: true,
	}
	s.Members[userID] = member
	s.LastActive = time.Now()
	return member
}

// IsDM reports whether the user currently runs the session
func (s *Session) IsDM(userID string) bool {
	if userID == "" {
		return false
	}
	if s.DMID == userID {
		return true
	}
	member, ok := s.Members[userID]
	return ok && member.Role == SessionRoleDM
}

// InEncounter reports whether an encounter is being played right now
func (s *Session) InEncounter() bool {
	return s.ActiveEncounterID != nil && *s.ActiveEncounterID != ""
}

// Start begins the session
func (s *Session) Start() bool {
	if s.Status != SessionStatusPlanning {
		return false
	}

	s.Status = SessionStatusActive
	s.LastActive = time.Now()
	return true
}

// End concludes the session
func (s *Session) End() bool {
	if s.Status == SessionStatusEnded {
		return false
	}

	s.Status = SessionStatusEnded
	s.LastActive = time.Now()
	return true
}

// SetPreviewDifficulty records a lobby difficulty choice without committing it
func (s *Session) SetPreviewDifficulty(d Difficulty) {
	s.PreviewDifficulty = &d
	s.LastActive = time.Now()
}

// CommitDifficulty applies a difficulty and clears any pending preview
func (s *Session) CommitDifficulty(d Difficulty) {
	s.Difficulty = d
	s.PreviewDifficulty = nil
	s.LastActive = time.Now()
}

// Pause temporarily halts an active session
func (s *Session) Pause() bool {
	if s.Status != SessionStatusActive {
		return false
	}

	s.Status = SessionStatusPaused
	s.LastActive = time.Now()
	return true
}

// Resume continues a paused session
func (s *Session) Resume() bool {
	if s.Status != SessionStatusPaused {
		return false
	}

	s.Status = SessionStatusActive
	s.LastActive = time.Now()
	return true
}

// IsMember reports whether the user has joined the session
func (s *Session) IsMember(userID string) bool {
	_, ok := s.Members[userID]
	return ok
}

// BeginEncounter marks an encounter as running. Only active sessions can
// start one and only one runs at a time.
func (s *Session) BeginEncounter(encounterID string) bool {
	if s.Status != SessionStatusActive || s.InEncounter() || encounterID == "" {
		return false
	}

	s.ActiveEncounterID = &encounterID
	s.LastActive = time.Now()
	return true
}

// FinishEncounter clears the running encounter
func (s *Session) FinishEncounter() bool {
	if !s.InEncounter() {
		return false
	}

	s.ActiveEncounterID = nil
	s.LastActive = time.Now()
	return true
}
