package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/CarloSlots_Go/internal/config"
	"github.com/osse101/CarloSlots_Go/internal/stats"
)

// MegaCommand runs one very long simulation and compares the observed
// jackpot and wild counts with the balancer's odds.
type MegaCommand struct {
	app *app
}

func (c *MegaCommand) Name() string {
	return "mega"
}

func (c *MegaCommand) Description() string {
	return "Run 1,000,000 spins and compare outcomes with expected odds"
}

func (c *MegaCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	players := fs.Int("players", 20, "number of active players (0-75)")
	spins := fs.Int("spins", config.DefaultMegaSpins, "number of spins")
	seed := fs.Uint64("seed", 0, "random seed for reproducibility (0 = SLOTSIM_SEED or random)")
	id := fs.String("scenario", "live", "catalog scenario id")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sc, err := c.app.registry.Get(*id)
	if err != nil {
		return err
	}

	stop := c.app.startBackground(ctx)
	defer stop()

	if !*asJSON {
		PrintHeader(fmt.Sprintf("MEGA TEST: %s spins", out.Sprintf("%d", *spins)))
		PrintInfo("Running %d spins with %d players...", *spins, *players)
	}

	start := time.Now()
	res, err := c.app.engine.Run(ctx, sc, *players, *spins, c.app.seed(*seed))
	if err != nil {
		return err
	}
	c.app.recordResults(res)
	expectation := stats.Expect(res.Report)

	if *asJSON {
		return printJSON(struct {
			Result      interface{}       `json:"result"`
			Expectation stats.Expectation `json:"expectation"`
		}{res, expectation})
	}

	printResult(res)
	fmt.Printf("\n(%s elapsed)\n\n", time.Since(start).Round(time.Millisecond))
	printExpectation(expectation)
	return nil
}
