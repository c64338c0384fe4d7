package main

import (
	"encoding/json"
	"flag"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"skirmish/internal/catalog"
	"skirmish/internal/sim"
	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

// TestCase is one highlight fixture: a board, a selected unit and the cells
// the engine reports for it. Other clients replay these to check parity.
type TestCase struct {
	Snapshot string           `json:"snapshot"`
	From     skirmish.Coord   `json:"from"`
	Kind     string           `json:"kind"`
	Owner    string           `json:"owner"`
	Moves    []skirmish.Coord `json:"moves"`
	Attacks  []skirmish.Coord `json:"attacks"`
}

func main() {
	catalogPath := flag.String("catalog", "", "unit catalog YAML (default: built-in roster)")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	games := flag.Int("games", 20, "random skirmishes to sample")
	maxTurns := flag.Int("turns", 40, "max turns per skirmish")
	perSide := flag.Int("per-side", 8, "units per side in the opening")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	logger.Init()
	log := logger.Log

	var (
		cat *catalog.Catalog
		err error
	)
	if *catalogPath == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(*catalogPath)
	}
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}

	rng := rand.New(rand.NewSource(*seed))
	var cases []TestCase
	for g := 0; g < *games; g++ {
		b := sim.Opening(rng, cat, *perSide)
		owner := skirmish.OwnerPrimary
		for t := 0; t < *maxTurns; t++ {
			if tc, ok := sample(rng, cat, b); ok {
				cases = append(cases, tc)
			}
			mv, ok := sim.RandomMove(rng, cat, b, owner)
			if !ok {
				break
			}
			b = sim.Apply(b, mv)
			if owner == skirmish.OwnerPrimary {
				owner = skirmish.OwnerSecondary
			} else {
				owner = skirmish.OwnerPrimary
			}
		}
	}

	data, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("marshal fixtures")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.WithError(err).Fatal("write fixtures")
	}
	log.WithFields(logrus.Fields{"cases": len(cases), "out": *out}).Info("parity fixtures written")
}

// sample records the highlight sets of one random unit on b.
func sample(rng *rand.Rand, cat *catalog.Catalog, b *skirmish.Board) (TestCase, bool) {
	units := b.Units()
	if len(units) == 0 {
		return TestCase{}, false
	}
	p := units[rng.Intn(len(units))]
	return TestCase{
		Snapshot: cat.EncodeBoard(b),
		From:     p.At,
		Kind:     p.Unit.Kind,
		Owner:    string(p.Unit.Owner),
		Moves:    orEmpty(skirmish.ComputeMoveTargets(b, p.Unit.Owner, p.At, cat.Move(p.Unit.Kind)).Sorted()),
		Attacks:  orEmpty(skirmish.ComputeAttackTargets(b, p.At).Sorted()),
	}, true
}

func orEmpty(cs []skirmish.Coord) []skirmish.Coord {
	if cs == nil {
		return []skirmish.Coord{}
	}
	return cs
}
