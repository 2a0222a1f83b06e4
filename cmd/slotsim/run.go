package main

import (
	"context"
	"flag"
)

// RunCommand simulates one scenario at one table size
type RunCommand struct {
	app *app
}

func (c *RunCommand) Name() string {
	return "run"
}

func (c *RunCommand) Description() string {
	return "Run one scenario and print its report"
}

func (c *RunCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	players := fs.Int("players", 20, "number of active players (0-75)")
	spins := fs.Int("spins", c.app.cfg.Spins, "number of spins")
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

	res, err := c.app.engine.Run(ctx, sc, *players, *spins, c.app.seed(*seed))
	if err != nil {
		return err
	}
	c.app.recordResults(res)

	if *asJSON {
		return printJSON(res)
	}
	printResult(res)
	return nil
}
