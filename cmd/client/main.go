// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-staff-keeper/internal/adapter"
	"github.com/MKhiriev/go-staff-keeper/internal/client"
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	if len(args) > 0 && args[0] == "version" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return 0
	}

	// stdout is reserved for command output
	log := logger.NewLogger("staff-client", logger.Options{Level: cfg.LogLevel})
	log.Logger = log.Output(os.Stderr)

	api, err := adapter.NewHTTPStaffAPI(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating staff api client")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, client.TerminalPrompt(os.Stderr), os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, client.ErrUsage) {
			return 2
		}
		return 1
	}

	return 0
}
