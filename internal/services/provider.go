package services

import (
	"github.com/KirkDiggler/dnd-bot-mutators/internal/definitions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/events"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/metrics"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/gamesessions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/mutatorsets"
	mutatorService "github.com/KirkDiggler/dnd-bot-mutators/internal/services/mutator"
	sessionService "github.com/KirkDiggler/dnd-bot-mutators/internal/services/session"
)

// Provider holds all service instances
type Provider struct {
	SessionService sessionService.Service
	MutatorService mutatorService.Service
	EventBus       *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	SessionRepository    gamesessions.Repository
	MutatorSetRepository mutatorsets.Repository
	Metrics              *metrics.Metrics
	Messenger            mutatorService.Messenger
	Localizer            mutators.Localizer
	Definitions          []definitions.Definition
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	sessionRepo := cfg.SessionRepository
	if sessionRepo == nil {
		sessionRepo = gamesessions.NewInMemoryRepository()
	}

	setRepo := cfg.MutatorSetRepository
	if setRepo == nil {
		setRepo = mutatorsets.NewInMemoryRepository()
	}

	bus := events.NewBus()

	sessService := sessionService.NewService(&sessionService.ServiceConfig{
		Repository: sessionRepo,
	})

	mutService := mutatorService.NewService(&mutatorService.ServiceConfig{
		Sessions:    sessionRepo,
		Sets:        setRepo,
		Bus:         bus,
		Metrics:     cfg.Metrics,
		Messenger:   cfg.Messenger,
		Localizer:   cfg.Localizer,
		Definitions: cfg.Definitions,
	})

	return &Provider{
		SessionService: sessService,
		MutatorService: mutService,
		EventBus:       bus,
	}
}
