package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kitchenbuddy/pantry/barcode"
	"github.com/kitchenbuddy/pantry/ingredient"
	"github.com/kitchenbuddy/pantry/internal/config"
	"github.com/kitchenbuddy/pantry/internal/kv"
	"github.com/kitchenbuddy/pantry/internal/logging"
	"github.com/kitchenbuddy/pantry/internal/paths"
	"github.com/spf13/cobra"
)

// nowEnvVar pins the clock, for scripted tests.
const nowEnvVar = "PANTRY_NOW"

// settings holds the merged config and process logger for one invocation.
type settings struct {
	cfg    *config.Config
	logger *slog.Logger
	clock  func() time.Time
}

// app is the state shared by commands that touch the ingredient collection.
// It is built once per invocation and closed when the command finishes.
type app struct {
	settings
	blobs kv.Store
	store *ingredient.Store
}

func (a *app) Close() error {
	return a.blobs.Close()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return settings{}, fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return settings{}, err
	}

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = rootLogLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return settings{}, err
	}

	clock, err := appClock()
	if err != nil {
		return settings{}, err
	}

	return settings{cfg: cfg, logger: logger, clock: clock}, nil
}

func appClock() (func() time.Time, error) {
	value := os.Getenv(nowEnvVar)
	if value == "" {
		return time.Now, nil
	}
	pinned, err := ingredient.ParseTime(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nowEnvVar, err)
	}
	return func() time.Time { return pinned }, nil
}

func openApp(cmd *cobra.Command) (*app, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(cmd, s)
}

// openStore opens the configured storage backend and loads the collection.
func openStore(cmd *cobra.Command, s settings) (*app, error) {
	backend := s.cfg.Store.Backend
	if cmd.Flags().Changed("store") {
		backend = rootStoreBackend
	}
	dataDir, err := resolveDataDir(cmd, s.cfg)
	if err != nil {
		return nil, err
	}

	blobs, err := kv.Open(kv.Backend(backend), dataDir)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("opened storage", slog.String("backend", backend), slog.String("dir", dataDir))

	store := ingredient.Open(commandContext(cmd), blobs, ingredient.OpenOptions{
		Logger: s.logger,
		Clock:  s.clock,
	})
	return &app{settings: s, blobs: blobs, store: store}, nil
}

func resolveDataDir(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if cmd.Flags().Changed("data-dir") && rootDataDir != "" {
		return rootDataDir, nil
	}
	if cfg.Store.DataDir != "" {
		return cfg.Store.DataDir, nil
	}
	return paths.DefaultDataDir()
}

func newResolver(s settings) (*barcode.Resolver, error) {
	timeout, err := s.cfg.Barcode.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	return barcode.NewResolver(barcode.Options{
		BaseURL: s.cfg.Barcode.Endpoint,
		Timeout: timeout,
	}), nil
}

func storeBackends() []kv.Backend {
	return kv.ValidBackends()
}

func horizonDays(s settings, cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("days") {
		return flagValue
	}
	if s.cfg.Expiring.Days > 0 {
		return s.cfg.Expiring.Days
	}
	return ingredient.DefaultHorizonDays
}
