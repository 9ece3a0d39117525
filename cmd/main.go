// Package main runs the ATM console on the standard streams.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-atm/cmd/atmapp"
	"github.com/go-petr/pet-atm/pkg/configpkg"
	"github.com/go-petr/pet-atm/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.New(config)

	app, err := atmapp.New(context.Background(), config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create atm")
	}

	logger.Info().Str("driver", config.DBDriver).Msg("ATM HAS STARTED")

	runErr := app.Run(context.Background(), os.Stdin, os.Stdout)

	if err := app.Close(); err != nil {
		logger.Error().Err(err).Msg("cannot close database")
	}

	if runErr != nil {
		logger.Fatal().Err(runErr).Msg("console session failed")
	}
}
