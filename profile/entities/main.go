// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/edwinsyarief/reks"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 100
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		w := reks.NewWorld()
		for range iters {
			for range numEntities {
				b := w.CreateEntity()
				reks.WithComponent(b, comp1{V: 1})
				reks.WithComponent(b, comp2{W: 1})
				b.Build()
			}
			_ = reks.Execute2(w, func(c1 reks.Mut[comp1], c2 reks.Ref[comp2]) {
				c1.Get().V += c2.Get().V
				c1.Get().W += c2.Get().W
			})
		}
	}
}
