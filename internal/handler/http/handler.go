package http

import (
	"time"

	"github.com/MKhiriev/go-customer-portal/internal/config"
	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/service"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
)

type Handler struct {
	services *service.Services

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	// checkIntegrity enables the HashSHA256 request body check.
	checkIntegrity bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		checkIntegrity: cfg.App.HashKey != "",
		logger:         logger,
	}
}
