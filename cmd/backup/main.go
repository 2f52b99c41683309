package main

import (
	"context"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/vietanh2810/icecream-api/cmd/app"
	"github.com/vietanh2810/icecream-api/internal/backup"
	"github.com/vietanh2810/icecream-api/internal/config"
	"github.com/vietanh2810/icecream-api/internal/logger"
	"github.com/vietanh2810/icecream-api/internal/repository"
	"github.com/vietanh2810/icecream-api/internal/repository/dao"
	"github.com/vietanh2810/icecream-api/internal/service"
	"github.com/vietanh2810/icecream-api/internal/storage"
)

const timeout = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer zap.L().Sync() //nolint:errcheck

	postgresDB, err := app.OpenDB(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	store, err := storage.NewS3Store(ctx, conf.Backup)
	if err != nil {
		return fmt.Errorf("failed to initialize storage -> %w", err)
	}

	flavourRepo := repository.NewFlavourRepository(dao.NewFlavourDAO(postgresDB))
	personRepo := repository.NewPersonRepository(dao.NewPersonDAO(postgresDB), flavourRepo)

	runner := backup.NewRunner(
		service.NewFlavourService(flavourRepo, conf.FormRules, nil),
		service.NewPersonService(personRepo, flavourRepo),
		store,
		conf.Backup.Prefix,
		conf.Backup.Keep,
	)

	key, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("backup failed -> %w", err)
	}
	zap.L().Info("backup finished", zap.String("bucket", conf.Backup.Bucket), zap.String("key", key))

	return nil
}
