// Command server runs the room API.
//
// This binary:
//  1. loads config from environment variables (.env during dev)
//  2. connects to Redis and wires repositories and the room service
//  3. serves the HTTP API until SIGINT/SIGTERM
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/NachoLave/SushiLibre/internal/common/clock"
	"github.com/NachoLave/SushiLibre/internal/common/roomcode"
	"github.com/NachoLave/SushiLibre/internal/config"
	"github.com/NachoLave/SushiLibre/internal/handlers/api"
	archiveRepo "github.com/NachoLave/SushiLibre/internal/repositories/archive"
	roomRepo "github.com/NachoLave/SushiLibre/internal/repositories/room"
	roomService "github.com/NachoLave/SushiLibre/internal/services/room"
)

func main() {
	// Load .env for local development
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg := config.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	rooms, err := roomRepo.NewRedis(&roomRepo.Config{
		RedisClient:   redisClient,
		CodeGenerator: roomcode.New(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room repository")
	}

	archive, err := archiveRepo.NewRedis(&archiveRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create archive repository")
	}

	// Initialize room service
	roomSvc, err := roomService.New(&roomService.Config{
		RoomRepo:    rooms,
		ArchiveRepo: archive,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create room service")
	}

	// Initialize HTTP handler
	handler, err := api.New(&api.Config{
		RoomService: roomSvc,
		Logger:      log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create API handler")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(api.RequestLogger(log.Logger))
	router.Use(cors.Default())

	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for a signal to shut down
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
