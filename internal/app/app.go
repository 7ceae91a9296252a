// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the customer portal server from its configuration:
// storage, migrations, services, handlers and the HTTP server.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-customer-portal/internal/config"
	"github.com/MKhiriev/go-customer-portal/internal/handler"
	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/server"
	"github.com/MKhiriev/go-customer-portal/internal/service"
	"github.com/MKhiriev/go-customer-portal/internal/store"
	"github.com/MKhiriev/go-customer-portal/models"
)

// App owns the long-lived resources of one server process.
type App struct {
	cfg    *config.StructuredConfig
	db     *store.DB
	server server.Server
	logger *logger.Logger
}

// New connects to the database, applies migrations and wires every layer.
// A build version injected at link time replaces the configured version.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if v := buildInfo.BuildVersion(); v != "" {
		cfg.App.Version = v
	}

	db, err := store.NewConnectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	srv, err := build(db, cfg, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &App{cfg: cfg, db: db, server: srv, logger: log}, nil
}

func build(db *store.DB, cfg *config.StructuredConfig, log *logger.Logger) (server.Server, error) {
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("migrations applied")

	handlers, err := newHandlers(db, cfg, log)
	if err != nil {
		return nil, err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return srv, nil
}

func newHandlers(db *store.DB, cfg *config.StructuredConfig, log *logger.Logger) (*handler.Handlers, error) {
	services, err := service.NewServices(store.NewStorages(db, log), *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	return handlers, nil
}

// Run blocks until the server receives a stop signal, then releases the
// database connection.
func (a *App) Run() {
	a.logger.Info().
		Str("address", a.cfg.Server.HTTPAddress).
		Str("version", a.cfg.App.Version).
		Msg("starting customer portal")

	a.server.RunServer()

	if err := a.db.Close(); err != nil {
		a.logger.Err(err).Msg("error closing database")
	}
}
