package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/patterns/infra/initializer"
	"github.com/amirasaad/patterns/pkg/config"
	"github.com/amirasaad/patterns/pkg/demo"
	"github.com/fatih/color"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Failed to load config:", err) //nolint:errcheck
		return 1
	}
	deps := initializer.InitializeDependencies(cfg, stdout, stderr)
	registry := demo.DefaultRegistry()

	if len(args) == 1 && args[0] == "list" {
		for _, name := range registry.All() {
			s, _ := registry.Get(name)
			fmt.Fprintf(stdout, "%-14s %s\n", s.Name, s.Description) //nolint:errcheck
		}
		return 0
	}

	names := args
	if len(names) == 0 {
		names = registry.All()
	}

	header := color.New(color.FgCyan, color.Bold)
	if deps.Color {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	env := demo.Env{
		Out:              deps.Out,
		Logger:           deps.Logger,
		Payload:          cfg.Demo.Payload,
		ChainLength:      cfg.Demo.ChainLength,
		NotificationKind: cfg.Demo.NotificationKind,
		Statement:        cfg.Demo.Statement,
	}

	status := 0
	for _, name := range names {
		header.Fprintf(stdout, "== %s ==\n", name) //nolint:errcheck
		if err := registry.Run(ctx, name, env); err != nil {
			deps.Logger.Error("Scenario failed", "scenario", name, "error", err)
			status = 1
		}
	}
	return status
}
