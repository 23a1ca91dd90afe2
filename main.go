package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"manaibay/cmd"
	"manaibay/internal/data/repository"
	"manaibay/internal/data/repository/cassandra"
	"manaibay/internal/data/repository/postgres"
	"manaibay/internal/wire"
	"manaibay/pkg/cache"
	"manaibay/pkg/database"
	"manaibay/pkg/token"
	"manaibay/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.Name, config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("env", config.App.Env),
		zap.String("port", config.App.Port),
		zap.String("store", config.Store.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	repos, closeStore := openStore(config, logger)
	defer closeStore()

	var revocations token.RevocationStore
	if config.Redis.Enabled() {
		client := cache.New(config.Redis.Addr, config.Redis.Password, config.Redis.DB)
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err), zap.String("addr", config.Redis.Addr))
		}
		revocations = token.NewRevocationStore(client)
		logger.Info("Token revocation enabled", zap.String("redis", config.Redis.Addr))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, revocations, config, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.APIServer(ctx, app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}

// openStore connects the configured backend and returns its repositories.
func openStore(config *utils.Config, logger *zap.Logger) (*repository.Repository, func()) {
	switch config.Store.Driver {
	case utils.StoreDriverPostgres:
		db, err := database.InitDB(config.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		logger.Info("Database connected successfully")
		return postgres.NewRepository(db, logger), db.Close

	default:
		db, err := database.InitCassandra(config.Cassandra)
		if err != nil {
			logger.Fatal("Failed to connect to cassandra",
				zap.Error(err),
				zap.Strings("contact_points", config.Cassandra.ContactPoints),
				zap.String("keyspace", config.Cassandra.Keyspace),
			)
		}
		logger.Info("Cassandra connected successfully", zap.String("keyspace", config.Cassandra.Keyspace))
		return cassandra.NewRepository(db, logger), db.Close
	}
}
