package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"job-khojo/internal/config"
	"job-khojo/internal/database"
	"job-khojo/internal/database/migration"
	dbpostgres "job-khojo/internal/database/postgres"
	"job-khojo/internal/infrastructure/cache"
	"job-khojo/internal/infrastructure/embedding"
	"job-khojo/internal/infrastructure/storage"
	"job-khojo/internal/infrastructure/webhook"
	"job-khojo/internal/ws"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	Uploader storage.Uploader
	Notifier webhook.Notifier
	Embedder embedding.Embedder

	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnectTimeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	mctx, mcancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer mcancel()
	if err := migration.Run(mctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	c := &Container{
		Config:   cfg,
		DB:       db,
		Cache:    cache.NewRedis(logger),
		Hub:      ws.NewHub(logger),
		Uploader: storage.NewSupabaseClient(cfg.Storage, logger),
		Logger:   logger,
	}

	// The optional clients return typed nils when disabled; only a live
	// client may land in the interface field, so nil checks keep working.
	if n := webhook.NewN8NClient(cfg.Webhook, logger); n != nil {
		c.Notifier = n
	}
	ge, err := embedding.NewGeminiEmbedder(context.Background(), cfg.Embedding)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if ge != nil {
		c.Embedder = ge
	}

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
