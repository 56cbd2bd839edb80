package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/config"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/definitions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/handlers/discord"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/i18n"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/metrics"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/gamesessions"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/repositories/mutatorsets"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatalf("Failed to load message catalogs: %v", err)
	}
	localizer := bundle.Localizer(cfg.Mutators.Locale)
	log.Printf("Using locale %s", localizer.Locale())

	// A broken file only loses its own definitions
	defs, err := definitions.LoadDir(cfg.Mutators.Dir)
	if err != nil {
		log.Printf("Problems loading mutator definitions from %s: %v", cfg.Mutators.Dir, err)
	}
	log.Printf("Loaded %d mutator definitions", len(defs))

	botMetrics := metrics.New()

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		Metrics:     botMetrics,
		Messenger:   discord.NewMessenger(dg),
		Localizer:   localizer,
		Definitions: defs,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if URL is provided
	if cfg.Redis.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.URL)

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)

			// Test connection
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repositories")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Successfully connected to Redis")

				// Create Redis repositories using bounded context constructors
				providerConfig.SessionRepository = gamesessions.NewRedis(redisClient)
				providerConfig.MutatorSetRepository = mutatorsets.NewRedis(redisClient)

				log.Println("Using Redis for persistence")
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
		Localizer:       localizer,
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	err = dg.Open()
	if err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		clientErr := dg.Close()
		if clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Periodic availability sweep
	g.Go(func() error {
		ticker := time.NewTicker(cfg.Mutators.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := serviceProvider.MutatorService.SweepAll(ctx); err != nil {
					log.Printf("Mutator sweep failed: %v", err)
				}
			}
		}
	})

	if cfg.Metrics.Addr != "" {
		server := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           botMetrics.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			log.Printf("Serving metrics on %s", cfg.Metrics.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	if cfg.Mutators.Watch {
		watcher, err := definitions.NewWatcher(&definitions.WatcherConfig{
			Dir: cfg.Mutators.Dir,
			OnLoad: func(path string, defs []definitions.Definition) {
				errs := serviceProvider.MutatorService.RegisterDefinitions(defs)
				log.Printf("Reloaded %s: %d definitions, %d rejected", path, len(defs), len(errs))
			},
		})
		if err != nil {
			log.Printf("Failed to watch %s, definitions will not reload: %v", cfg.Mutators.Dir, err)
		} else {
			g.Go(func() error {
				return watcher.Run(ctx)
			})
		}
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	if err := g.Wait(); err != nil {
		log.Printf("Shutting down after error: %v", err)
	}

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}
