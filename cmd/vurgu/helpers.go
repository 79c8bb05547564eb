package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hukuksozluk/vurgu/internal/config"
	"github.com/hukuksozluk/vurgu/internal/database"
	"github.com/hukuksozluk/vurgu/internal/definition"
	"github.com/hukuksozluk/vurgu/internal/dictionary"
	"github.com/hukuksozluk/vurgu/internal/highlight"
	"github.com/hukuksozluk/vurgu/internal/inference"
	"github.com/hukuksozluk/vurgu/internal/inference/openai"
	"github.com/hukuksozluk/vurgu/internal/pipeline"
	"github.com/hukuksozluk/vurgu/internal/tagger/huggingface"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openStore opens the configured database and creates the cache table.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, *definition.SQLStore, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open > %w", err)
	}
	store := definition.NewSQLStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("store.EnsureSchema > %w", err)
	}
	return db, store, nil
}

func newDictionaryClient(cfg config.DictionaryConfig) *dictionary.Client {
	return dictionary.NewClient(dictionary.Config{
		BaseURL:            cfg.BaseURL,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Timeout:            cfg.Timeout,
	})
}

// app holds every component of a highlighting process.
type app struct {
	cfg         *config.Config
	db          *sqlx.DB
	store       *definition.SQLStore
	tagger      *huggingface.Client
	openai      *openai.Client
	highlighter *pipeline.Highlighter
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	db, store, err := openStore(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:   cfg,
		db:    db,
		store: store,
		tagger: huggingface.NewClient(
			cfg.Tagger.Endpoint,
			cfg.Tagger.Token,
			cfg.Tagger.Timeout,
			cfg.Tagger.MaxRetryAttempts,
		),
	}

	var explainer inference.Explainer
	if cfg.OpenAI.APIKey != "" {
		a.openai = openai.NewClient(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Timeout,
			cfg.OpenAI.MaxRetryAttempts,
		)
		explainer = a.openai
	}

	a.highlighter = pipeline.NewHighlighter(
		a.tagger,
		definition.NewChain(store, newDictionaryClient(cfg.Dictionary)),
		highlight.NewRandomAssigner(nil),
		explainer,
		pipeline.Options{
			NGramSize:         cfg.Pipeline.NGramSize,
			MultiWord:         cfg.Pipeline.MultiWord,
			Throttle:          cfg.Dictionary.Throttle,
			ThrottleCacheHits: cfg.Dictionary.ThrottleCacheHits,
		},
	)
	return a, nil
}

func (a *app) Close() error {
	_ = a.tagger.Close()
	if a.openai != nil {
		_ = a.openai.Close()
	}
	return a.db.Close()
}
