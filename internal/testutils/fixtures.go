package testutils

import (
	"github.com/KirkDiggler/dnd-bot-mutators/internal/definitions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
)

// CreateTestSession creates an active test session run by dmID
func CreateTestSession(id, dmID, name string) *entities.Session {
	sess := entities.NewSession(id, name, "test-realm", "test-channel", dmID)
	sess.Status = entities.SessionStatusActive
	return sess
}

// CreateTestSessionWithPlayers adds each player to a fresh test session
func CreateTestSessionWithPlayers(id, dmID string, playerIDs ...string) *entities.Session {
	sess := CreateTestSession(id, dmID, "Test Session")
	for _, p := range playerIDs {
		sess.AddMember(p, entities.SessionRolePlayer)
	}
	return sess
}

// StartTestEncounter marks the session as mid-encounter
func StartTestEncounter(sess *entities.Session, encounterID string) {
	sess.ActiveEncounterID = &encounterID
}

// CreateTestDefinitions returns a small catalogue covering ordering,
// compatibility and difficulty restrictions:
//
//	brutal       hard/deadly only, 2 dice
//	glass_cannon after brutal, 1 die
//	pacifist     incompatible with brutal
//	lone_wolf    incompatible with everything, 3 dice
func CreateTestDefinitions() []definitions.Definition {
	return []definitions.Definition{
		{
			Name: "brutal",
			Config: mutators.Config{
				Title:            "Brutal",
				DifficultyLevels: []entities.Difficulty{entities.DifficultyHard, entities.DifficultyDeadly},
				Dice:             2,
			},
		},
		{
			Name: "glass_cannon",
			Config: mutators.Config{
				Title:            "Glass Cannon",
				EnableAfterThese: []string{"brutal"},
				Dice:             1,
			},
		},
		{
			Name: "pacifist",
			Config: mutators.Config{
				Title:            "Pacifist",
				TitlePlacement:   mutators.PlacementBefore,
				IncompatibleWith: []string{"brutal"},
			},
		},
		{
			Name: "lone_wolf",
			Config: mutators.Config{
				Title:               "Lone Wolf",
				IncompatibleWithAll: true,
				Dice:                3,
			},
		},
	}
}
