package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-customer-portal/internal/app"
	"github.com/MKhiriev/go-customer-portal/internal/config"
	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.Banner())

	log := logger.NewLogger("customer-portal")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	application, err := app.New(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing application")
	}

	application.Run()
}
