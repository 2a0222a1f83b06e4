package main

import (
	"context"
	"flag"
)

// ServeCommand keeps the metrics and scenario API up until interrupted
type ServeCommand struct {
	app *app
}

func (c *ServeCommand) Name() string {
	return "serve"
}

func (c *ServeCommand) Description() string {
	return "Serve /metrics, /healthz and the scenario API until interrupted"
}

func (c *ServeCommand) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	addr := fs.String("addr", c.app.cfg.MetricsAddr, "listen address (default SLOTSIM_METRICS_ADDR or :9090)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *addr == "" {
		*addr = defaultServeAddr
	}
	c.app.cfg.MetricsAddr = *addr

	stop := c.app.startBackground(ctx)
	defer stop()

	PrintInfo("Serving on %s, press Ctrl+C to stop", *addr)
	<-ctx.Done()
	return nil
}
