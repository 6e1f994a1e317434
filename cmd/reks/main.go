package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/edwinsyarief/reks"
	"github.com/edwinsyarief/reks/internal/config"
	"github.com/edwinsyarief/reks/internal/kinematics"
	"github.com/edwinsyarief/reks/internal/logging"
)

func main() {
	configPath := flag.String("config", "reks.toml", "path to the TOML config file")
	flag.Parse()

	if err := run(*configPath, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	w := kinematics.CreateWorld(
		reks.WithLogger(log),
		reks.WithInitialCapacity(cfg.World.InitialCapacity),
	)
	kinematics.Populate(w, cfg.Simulation.Entities)
	kinematics.SetDeltaTime(w, cfg.Simulation.DT)
	log.Info("world ready",
		zap.Int("entities", w.Len()),
		zap.Float64("dt", cfg.Simulation.DT),
		zap.Int("steps", cfg.Simulation.Steps))

	fmt.Fprintln(out, "Before execution:")
	if err := printState(w, out); err != nil {
		return err
	}
	for range cfg.Simulation.Steps {
		if err := kinematics.Step(w); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "After execution:")
	return printState(w, out)
}

func printState(w *reks.World, out io.Writer) error {
	if err := reks.PrintComponents[kinematics.Pos](w, out); err != nil {
		return err
	}
	return reks.PrintComponents[kinematics.Vel](w, out)
}
