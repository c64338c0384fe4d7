package main

import (
	"flag"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"skirmish/internal/catalog"
	"skirmish/internal/sim"
	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

func main() {
	catalogPath := flag.String("catalog", "", "unit catalog YAML (default: built-in roster)")
	games := flag.Int("games", 50, "number of random skirmishes")
	maxTurns := flag.Int("turns", 60, "max turns per skirmish")
	perSide := flag.Int("per-side", 8, "units per side in the opening")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	bench := flag.Bool("bench", false, "time highlight generation instead of checking invariants")
	pprof := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	logger.Init()
	log := logger.Log

	if *pprof != "" {
		go func() {
			log.Infof("pprof listening on %s", *pprof)
			if err := http.ListenAndServe(*pprof, nil); err != nil {
				log.WithError(err).Warn("pprof failed")
			}
		}()
	}

	cat, err := loadCatalog(*catalogPath)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))
	log.WithFields(logrus.Fields{"seed": *seed, "games": *games, "kinds": len(cat.Kinds())}).Info("soak starting")

	if *bench {
		runBenchmark(rng, cat, *games, *maxTurns, *perSide)
		return
	}

	violations := 0
	for g := 0; g < *games; g++ {
		b := sim.Opening(rng, cat, *perSide)
		owner := skirmish.OwnerPrimary
		turns := 0
		for ; turns < *maxTurns; turns++ {
			for _, v := range sim.CheckInvariants(cat, b) {
				violations++
				log.WithFields(logrus.Fields{
					"game":     g + 1,
					"turn":     turns,
					"snapshot": cat.EncodeBoard(b),
				}).Error(v.String())
			}
			mv, ok := sim.RandomMove(rng, cat, b, owner)
			if !ok {
				break
			}
			b = sim.Apply(b, mv)
			owner = other(owner)
		}
		log.Debugf("game %d finished after %d turns: %s", g+1, turns, cat.EncodeBoard(b))
	}

	if violations > 0 {
		log.Errorf("soak finished with %d violations", violations)
		os.Exit(1)
	}
	log.Info("soak finished clean")
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

func other(o skirmish.OwnerID) skirmish.OwnerID {
	if o.IsPrimary() {
		return skirmish.OwnerSecondary
	}
	return skirmish.OwnerPrimary
}
