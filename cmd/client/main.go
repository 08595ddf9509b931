package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/career-dashboard/internal/client"
	"github.com/MKhiriev/career-dashboard/internal/config"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("career-dashboard-client", cfg.App.LogFile)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	var app client.Client
	app, err = client.NewApp(context.Background(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
