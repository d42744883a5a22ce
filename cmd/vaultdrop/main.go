// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package main

import (
	"context"

	"github.com/Karthikeya-Naik/VaultDrop/internal/adapter"
	"github.com/Karthikeya-Naik/VaultDrop/internal/config"
	"github.com/Karthikeya-Naik/VaultDrop/internal/logger"
	"github.com/Karthikeya-Naik/VaultDrop/internal/service"
	"github.com/Karthikeya-Naik/VaultDrop/internal/session"
	"github.com/Karthikeya-Naik/VaultDrop/internal/tui"
)

var buildVersion = "dev"

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("vaultdrop", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("vaultdrop", cfg.App.LogFilePath)
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	serverAdapter := adapter.NewHTTPVaultAdapter(cfg.Adapter, log)

	sessionStore, err := session.NewStore(cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create session store")
	}
	if _, err = sessionStore.Restore(); err != nil {
		log.Fatal().Err(err).Msg("restore session")
	}

	services := service.NewClientServices(serverAdapter, sessionStore, log)

	ui, err := tui.New(services, sessionStore, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
