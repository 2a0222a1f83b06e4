package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/osse101/CarloSlots_Go/internal/scenario"
)

// SweepCommand runs a scenario by player count by spin count grid
type SweepCommand struct {
	app *app
}

func (c *SweepCommand) Name() string {
	return "sweep"
}

func (c *SweepCommand) Description() string {
	return "Run a grid of scenarios, player counts and spin counts in parallel"
}

func (c *SweepCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	preset := fs.String("preset", "", "catalog sweep preset (stress, comprehensive, compare)")
	ids := fs.String("scenarios", "live", "comma separated scenario ids")
	players := fs.String("players", "", "comma separated player counts (default SLOTSIM_PLAYER_COUNTS)")
	spins := fs.String("spins", "", "comma separated spin counts (default SLOTSIM_SPINS)")
	seed := fs.Uint64("seed", 0, "base seed; cell i uses seed+i (0 = SLOTSIM_SEED or random)")
	asJSON := fs.Bool("json", false, "print results as JSON")
	verbose := fs.Bool("v", false, "print the full report for every cell")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sw, err := c.resolve(*preset, *ids, *players, *spins)
	if err != nil {
		return err
	}
	scenarios, err := c.app.registry.Lookup(sw.Scenarios...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.app.cfg.SweepTimeout)
	defer cancel()
	stop := c.app.startBackground(ctx)
	defer stop()

	if !*asJSON {
		PrintInfo("Testing %d scenarios × %d player counts × %d spin counts = %d runs",
			len(scenarios), len(sw.PlayerCounts), len(sw.SpinCounts),
			len(scenarios)*len(sw.PlayerCounts)*len(sw.SpinCounts))
	}

	start := time.Now()
	results, err := c.app.engine.Sweep(ctx, scenarios, sw.PlayerCounts, sw.SpinCounts, c.app.seed(*seed))
	c.app.recordResults(results...)

	if *asJSON {
		if jerr := printJSON(results); jerr != nil {
			return jerr
		}
		return err
	}

	current := ""
	for _, r := range results {
		if *verbose {
			printResult(r)
			continue
		}
		if r.ScenarioID != current && current != "" {
			fmt.Println()
		}
		current = r.ScenarioID
		printSweepRow(r)
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	if failed > 0 {
		PrintWarning("%d of %d runs failed assertions or steps", failed, len(results))
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			PrintWarning("Sweep timed out after %s", c.app.cfg.SweepTimeout)
		}
		return err
	}
	PrintSuccess("Sweep complete: %d runs in %s", len(results), time.Since(start).Round(time.Millisecond))
	return nil
}

// resolve builds the grid from a preset or from flags and configuration
func (c *SweepCommand) resolve(preset, ids, players, spins string) (scenario.Sweep, error) {
	if preset != "" {
		sw, ok := c.app.catalog.Sweep(preset)
		if !ok {
			return scenario.Sweep{}, fmt.Errorf("%w: sweep preset %s", scenario.ErrScenarioNotFound, preset)
		}
		return sw, nil
	}

	sw := scenario.Sweep{ID: "custom", Scenarios: splitList(ids)}
	var err error
	if sw.PlayerCounts, err = parseInts(players); err != nil {
		return sw, err
	}
	if len(sw.PlayerCounts) == 0 {
		sw.PlayerCounts = c.app.cfg.PlayerCounts
	}
	if sw.SpinCounts, err = parseInts(spins); err != nil {
		return sw, err
	}
	if len(sw.SpinCounts) == 0 {
		sw.SpinCounts = []int{c.app.cfg.Spins}
	}
	return sw, nil
}
