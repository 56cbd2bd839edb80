package mutator

import (
	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
)

// sessionView is the engine's window onto the session and the participant
// acting on it. It is rebound under the engine lock before every operation.
type sessionView struct {
	session   *entities.Session
	actorID   string
	restoring bool
}

var (
	_ mutators.HostAuthority    = (*sessionView)(nil)
	_ mutators.DifficultySource = (*sessionView)(nil)
	_ mutators.ActivationGuard  = (*sessionView)(nil)
)

func (v *sessionView) bind(sess *entities.Session, actorID string) {
	v.session = sess
	v.actorID = actorID
}

func (v *sessionView) sessionID() string {
	if v.session == nil {
		return ""
	}
	return v.session.ID
}

// HasHostAuthority holds for the session's DM
func (v *sessionView) HasHostAuthority() bool {
	return v.session != nil && v.session.IsDM(v.actorID)
}

func (v *sessionView) CurrentDifficulty() (entities.Difficulty, bool) {
	if v.session == nil || !v.session.Difficulty.IsValid() {
		return "", false
	}
	return v.session.Difficulty, true
}

func (v *sessionView) PreviewDifficulty() (entities.Difficulty, bool) {
	if v.session == nil || v.session.PreviewDifficulty == nil || !v.session.PreviewDifficulty.IsValid() {
		return "", false
	}
	return *v.session.PreviewDifficulty, true
}

// ActivationAllowed blocks enables while an encounter runs. Restoring a
// persisted set is exempt.
func (v *sessionView) ActivationAllowed() bool {
	if v.restoring || v.session == nil {
		return true
	}
	return !v.session.InEncounter()
}

// sessionMessenger routes the engine's local echo to the acting participant
// and its broadcast to the session channel
type sessionMessenger struct {
	view *sessionView
	out  Messenger
}

func (m *sessionMessenger) Echo(message string) error {
	return m.out.SendDirect(m.view.actorID, message)
}

func (m *sessionMessenger) Broadcast(message string) error {
	if m.view.session == nil {
		return nil
	}
	return m.out.SendChannel(m.view.session.ChannelID, message)
}
