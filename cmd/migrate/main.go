package main

import (
	"context"
	"flag"
	"log"
	"time"

	"mindflow/internal/config"
	"mindflow/internal/database"
	"mindflow/internal/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back instead of applying migrations")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -down")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer func() { _ = logger.Sync() }()

	client, err := database.ConnectMongo(context.Background(), cfg.Mongo)
	if err != nil {
		l.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	if *down {
		if err := database.RollbackMigrations(client, cfg.Mongo.Database, *steps); err != nil {
			l.Fatal("Failed to roll back migrations", zap.Error(err))
		}
		l.Info("Rolled back migrations", zap.Int("steps", *steps))
		return
	}

	version, err := database.RunMigrations(client, cfg.Mongo.Database)
	if err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.Uint("version", version))
}
