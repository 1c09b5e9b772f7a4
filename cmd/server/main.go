package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/forgo/worldforge/api/internal/config"
	"github.com/forgo/worldforge/api/internal/database"
	"github.com/forgo/worldforge/api/internal/events"
	"github.com/forgo/worldforge/api/internal/handler"
	"github.com/forgo/worldforge/api/internal/middleware"
	"github.com/forgo/worldforge/api/internal/model"
	"github.com/forgo/worldforge/api/internal/repository"
	"github.com/forgo/worldforge/api/internal/resilience"
	"github.com/forgo/worldforge/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// One resilience state per entity family, so a failing collection trips
	// only its own breaker.
	policy := resilience.Config{
		FailureRateThreshold: cfg.Resilience.FailureRateThreshold,
		MinRequests:          cfg.Resilience.MinRequests,
		Window:               cfg.Resilience.Window,
		OpenTimeout:          cfg.Resilience.OpenTimeout,
		MaxRetries:           cfg.Resilience.MaxRetries,
		RetryInterval:        cfg.Resilience.RetryInterval,
		MaxConcurrent:        cfg.Resilience.MaxConcurrent,
	}
	state := func(family string) *resilience.State {
		return resilience.NewState(family, policy, logger)
	}

	// Initialize repositories
	areaRepo := repository.NewAreaRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	itemRepo := repository.NewItemRepository(db)
	mobileRepo := repository.NewMobileRepository(db)
	shopRepo := repository.NewShopRepository(db)
	resetRepo := repository.NewResetRepository(db)
	specialRepo := repository.NewSpecialRepository(db)
	classRepo := repository.NewClassRepository(db)
	raceRepo := repository.NewRaceRepository(db)
	commandRepo := repository.NewCommandRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	gameDataRepo := repository.NewGameDataRepository(db)

	// Event bus and the cleanup listeners that cascade an area deletion to
	// its dependent collections.
	bus := events.NewBus(logger)
	service.RegisterCleanupListeners(bus, service.CleanupConfig{
		Rooms:    roomRepo,
		Shops:    shopRepo,
		Mobiles:  mobileRepo,
		Resets:   resetRepo,
		Specials: specialRepo,
		Logger:   logger,
	})
	service.RegisterPlayerCleanupListeners(bus, characterRepo, logger)

	// Initialize services
	areaService := service.NewAreaService(service.AreaServiceConfig{
		Repo:   areaRepo,
		State:  state("area"),
		Bus:    bus,
		Logger: logger,
	})
	roomService := service.NewRoomService(roomRepo, state("room"), logger)
	itemService := service.NewItemService(itemRepo, state("item"), logger)
	mobileService := service.NewMobileService(mobileRepo, state("mobile"), logger)
	shopService := service.NewShopService(shopRepo, state("shop"), logger)
	resetService := service.NewResetService(resetRepo, state("reset"), logger)
	specialService := service.NewSpecialService(specialRepo, state("special"), logger)
	classService := service.NewClassService(classRepo, state("class"), logger)
	raceService := service.NewRaceService(raceRepo, state("race"), logger)
	commandService := service.NewCommandService(commandRepo, state("command"), logger)
	playerService := service.NewPlayerService(service.PlayerServiceConfig{
		Repo:   playerRepo,
		State:  state("player"),
		Bus:    bus,
		Logger: logger,
	})
	characterService := service.NewCharacterService(characterRepo, state("character"), logger)
	gameDataService := service.NewGameDataService(gameDataRepo, state("gamedata"), logger)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	handler.NewEntityHandler[model.Area](areaService).Register(mux, "/v1/areas")
	handler.NewEntityHandler[model.Room](roomService).Register(mux, "/v1/rooms")
	handler.NewItemHandler(itemService).Register(mux, "/v1/items")
	handler.NewEntityHandler[model.Mobile](mobileService).Register(mux, "/v1/mobiles")
	handler.NewEntityHandler[model.Shop](shopService).Register(mux, "/v1/shops")
	handler.NewEntityHandler[model.Reset](resetService).Register(mux, "/v1/resets")
	handler.NewEntityHandler[model.Special](specialService).Register(mux, "/v1/specials")
	handler.NewEntityHandler[model.Class](classService).Register(mux, "/v1/classes")
	handler.NewEntityHandler[model.Race](raceService).Register(mux, "/v1/races")
	handler.NewEntityHandler[model.Command](commandService).Register(mux, "/v1/commands")
	handler.NewEntityHandler[model.Player](playerService).Register(mux, "/v1/players")
	handler.NewEntityHandler[model.Character](characterService).Register(mux, "/v1/characters")
	handler.NewEntityHandler[model.GameData](gameDataService).Register(mux, "/v1/gamedata")

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
