package main

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"skirmish/internal/catalog"
	"skirmish/internal/sim"
	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

// runBenchmark plays random skirmishes and times full highlight generation
// for every unit on every visited board.
func runBenchmark(rng *rand.Rand, cat *catalog.Catalog, games, maxTurns, perSide int) {
	var (
		calls   int
		targets int
		spent   time.Duration
	)
	for g := 0; g < games; g++ {
		b := sim.Opening(rng, cat, perSide)
		owner := skirmish.OwnerPrimary
		for t := 0; t < maxTurns; t++ {
			start := time.Now()
			for _, p := range b.Units() {
				targets += skirmish.ComputeMoveTargets(b, p.Unit.Owner, p.At, cat.Move(p.Unit.Kind)).Len()
				calls++
			}
			spent += time.Since(start)

			mv, ok := sim.RandomMove(rng, cat, b, owner)
			if !ok {
				break
			}
			b = sim.Apply(b, mv)
			owner = other(owner)
		}
	}
	if calls == 0 {
		logger.Log.Warn("benchmark made no calls")
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"calls":       calls,
		"avg_targets": float64(targets) / float64(calls),
		"avg_call":    spent / time.Duration(calls),
		"total":       spent,
	}).Info("highlight benchmark")
}
