package app

import (
	"fmt"
	"os"

	"fastwise/internal/config"
	"fastwise/internal/database"
	"fastwise/internal/encryption"
	"fastwise/internal/fasting"
)

// App wires together the configuration, store, encryptor, logger and
// service for a single CLI invocation.
type App struct {
	Config    *config.Config
	Store     fasting.Store
	Encryptor fasting.Encryptor
	Service   *fasting.Service

	logFile *os.File
}

// NewApp loads the configuration from its default (or overridden)
// location and builds the full application.
func NewApp() (*App, error) {
	defaults, err := GetDefaults()
	if err != nil {
		return nil, err
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return NewAppWithConfig(cfg)
}

// NewAppWithConfig builds the application from an already-loaded config.
func NewAppWithConfig(cfg *config.Config) (*App, error) {
	logger, logFile, err := newLogger(cfg.LogDir)
	if err != nil {
		return nil, err
	}

	store, err := database.NewStoreFromConfig(cfg.Database)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("initializing store: %w", err)
	}

	encryptor, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		store.Close()
		logFile.Close()
		return nil, fmt.Errorf("initializing encryptor: %w", err)
	}

	service, err := fasting.NewService(
		store,
		&slogAdapter{l: logger},
		fasting.RealClock{},
		fasting.UUIDGenerator{},
		fasting.RealRand{},
	)
	if err != nil {
		store.Close()
		logFile.Close()
		return nil, fmt.Errorf("initializing service: %w", err)
	}

	err = service.SeedDefaultPreferences(
		cfg.Profile.DefaultProtocol, cfg.Profile.ExperienceLevel, cfg.Profile.MotivationStyle)
	if err != nil {
		store.Close()
		logFile.Close()
		return nil, fmt.Errorf("applying profile defaults: %w", err)
	}

	return &App{
		Config:    cfg,
		Store:     store,
		Encryptor: encryptor,
		Service:   service,
		logFile:   logFile,
	}, nil
}

// Close releases the store and log file.
func (a *App) Close() error {
	var firstErr error
	if err := a.Service.Close(); err != nil {
		firstErr = err
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
