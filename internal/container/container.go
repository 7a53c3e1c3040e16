// Package container provides dependency injection for the expense-parse
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"fjacquet/expense-parse/internal/config"
	"fjacquet/expense-parse/internal/datenorm"
	"fjacquet/expense-parse/internal/entity"
	"fjacquet/expense-parse/internal/extractor"
	"fjacquet/expense-parse/internal/logging"
	"fjacquet/expense-parse/internal/store"
	"fjacquet/expense-parse/internal/transcribe"
)

// Provider names accepted by entities.provider.
const (
	ProviderGemini  = "gemini"
	ProviderPattern = "pattern"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	source      entity.Source
	normalizer  datenorm.Normalizer
	extractor   *extractor.Extractor
	transcriber transcribe.Transcriber
	store       *store.CSVStore

	geminiSource *entity.GeminiSource
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first, everything else depends on it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	c := &Container{
		logger: logger,
		config: cfg,
	}

	switch cfg.Entities.Provider {
	case ProviderGemini:
		gemini, err := entity.NewGeminiSource(ctx, cfg.AI.APIKey, cfg.AI.Model, logger)
		if err != nil {
			return nil, fmt.Errorf("creating gemini entity source: %w", err)
		}
		c.geminiSource = gemini
		c.source = gemini
		logger.Info("using gemini entity source",
			logging.Field{Key: "model", Value: cfg.AI.Model})
	case ProviderPattern:
		pattern, err := entity.NewPatternSource(cfg.Entities.Lexicon, logger)
		if err != nil {
			return nil, fmt.Errorf("creating pattern entity source: %w", err)
		}
		c.source = pattern
		logger.Info("using pattern entity source")
	default:
		return nil, fmt.Errorf("unknown entity provider: %s", cfg.Entities.Provider)
	}

	c.normalizer = datenorm.New()
	c.extractor = extractor.New(c.source, c.normalizer, logger)
	c.transcriber = transcribe.NewWhisperCLI(
		cfg.Transcribe.Binary,
		cfg.Transcribe.Model,
		cfg.Transcribe.Language,
		logger,
	)
	delimiter := ','
	if cfg.CSV.Delimiter != "" {
		delimiter = []rune(cfg.CSV.Delimiter)[0]
	}
	c.store = store.NewCSVStore(delimiter, logger)

	logger.Info("container initialized",
		logging.Field{Key: "provider", Value: cfg.Entities.Provider},
		logging.Field{Key: "transcription_available", Value: c.transcriber.Available()})

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetEntitySource returns the wired entity source.
func (c *Container) GetEntitySource() entity.Source {
	return c.source
}

// GetExtractor returns the extraction pipeline.
func (c *Container) GetExtractor() *extractor.Extractor {
	return c.extractor
}

// GetTranscriber returns the transcription backend.
func (c *Container) GetTranscriber() transcribe.Transcriber {
	return c.transcriber
}

// GetStore returns the batch CSV store.
func (c *Container) GetStore() *store.CSVStore {
	return c.store
}

// Close releases container resources, currently the Gemini client
// connection when one was created.
func (c *Container) Close() error {
	if c.geminiSource != nil {
		if err := c.geminiSource.Close(); err != nil {
			return fmt.Errorf("closing gemini client: %w", err)
		}
	}
	c.logger.Info("container closed")
	return nil
}
