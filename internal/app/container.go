package app

import (
	"context"
	"time"

	"logistaff/internal/config"
	"logistaff/internal/database"
	"logistaff/internal/database/migration"
	dbpostgres "logistaff/internal/database/postgres"
	"logistaff/internal/infrastructure/cache"
	"logistaff/internal/logger"

	"github.com/rs/zerolog"
)

// Container holds the process-wide collaborators. Everything is created once
// here and passed by reference; nothing below this layer reaches for globals.
type Container struct {
	Config config.Config
	Logger zerolog.Logger
	DB     database.DB
	Cache  *cache.Redis
}

func NewContainer(cfg config.Config) (*Container, error) {
	log := logger.New(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, log),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
