package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
)

// ScenariosCommand lists the catalog
type ScenariosCommand struct {
	app *app
}

func (c *ScenariosCommand) Name() string {
	return "scenarios"
}

func (c *ScenariosCommand) Description() string {
	return "List catalog scenarios and sweep presets"
}

func (c *ScenariosCommand) Run(_ context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "print the catalog as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *asJSON {
		return printJSON(c.app.catalog)
	}

	PrintHeader("Scenarios")
	for _, s := range c.app.registry.Summaries() {
		fmt.Printf("  %-26s %-40s cap=%-12s dead=%-15s divisor=%d", s.ID, s.Name, s.AccumulatorCap, s.DeadSpin, s.Divisor)
		if s.StepCount > 0 {
			fmt.Printf(" steps=%d", s.StepCount)
		}
		fmt.Println()
	}

	PrintHeader("Sweep presets")
	for _, sw := range c.app.catalog.Sweeps {
		fmt.Printf("  %-26s %d scenarios, players %v, spins %v\n", sw.ID, len(sw.Scenarios), sw.PlayerCounts, sw.SpinCounts)
		if len(sw.Scenarios) <= 3 {
			fmt.Printf("  %-26s %s\n", "", strings.Join(sw.Scenarios, ", "))
		}
	}
	return nil
}
