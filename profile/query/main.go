// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/edwinsyarief/reks"
	"github.com/edwinsyarief/reks/internal/config"
	"github.com/edwinsyarief/reks/internal/kinematics"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

func main() {
	configPath := flag.String("config", "reks.toml", "path to the TOML config file")
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	rounds := 50
	iters := 1000
	entities := max(cfg.Simulation.Entities, 10000)
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	if err := run(rounds, iters, entities, cfg.Simulation.DT); err != nil {
		p.Stop()
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	p.Stop()
}

func run(rounds, iters, numEntities int, dt float64) error {
	for range rounds {
		w := reks.NewWorld(reks.WithInitialCapacity(numEntities))
		for range numEntities {
			w.CreateEntity().
				With(comp1{}).
				With(comp2{V: 1, W: 2}).
				With(comp3{}).
				With(comp4{V: 3, W: 4}).
				Build()
		}
		kinematics.Populate(w, numEntities)
		kinematics.SetDeltaTime(w, dt)

		for range iters {
			err := reks.Execute4(w, func(c1 reks.Mut[comp1], c2 reks.Ref[comp2], c3 reks.Mut[comp3], c4 reks.Ref[comp4]) {
				a, b := c1.Get(), c2.Get()
				a.V += b.V
				a.W += b.W
				c, d := c3.Get(), c4.Get()
				c.V += d.V
				c.W += d.W
			})
			if err != nil {
				return err
			}
			if err := kinematics.Step(w); err != nil {
				return err
			}
		}
	}
	return nil
}
