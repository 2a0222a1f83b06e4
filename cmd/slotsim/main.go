// Command slotsim runs CARLO slot economy simulations: single runs, parallel
// scenario sweeps and million-spin probability checks.
//
//go:generate swag init --dir ../../ --generalInfo cmd/slotsim/main.go --output ../../docs
//
// @title slotsim API
// @version 1.0
// @description Scenario catalog, synchronous scenario runs and sweep progress for the CARLO slot simulator.
// @BasePath /
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CarloSlots_Go/internal/config"
	"github.com/osse101/CarloSlots_Go/internal/logger"
)

const defaultServeAddr = ":9090"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			PrintError("Failed to load configuration: %v", err)
			return 1
		}
		PrintError("Invalid configuration:")
		for field, msg := range config.FormatValidationError(verrs) {
			PrintError("  %s: %s", field, msg)
		}
		return 1
	}

	log := logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Environment, false))

	a, err := newApp(cfg, log)
	if err != nil {
		PrintError("Failed to load scenarios: %v", err)
		return 1
	}

	registry := NewRegistry()
	registry.Register(&RunCommand{app: a})
	registry.Register(&SweepCommand{app: a})
	registry.Register(&MegaCommand{app: a})
	registry.Register(&ScenariosCommand{app: a})
	registry.Register(&ServeCommand{app: a})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		return 1
	}
	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		registry.PrintHelp()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithRunID(ctx, logger.GenerateRunID())

	if err := cmd.Run(ctx, os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		PrintError("%s: %v", cmd.Name(), err)
		return 1
	}
	return 0
}
