package skirmish

import (
	"math/rand"
	"time"
)

// ReturnHomeDelay is how long a unit lingers at the impact point before
// snapping back to where the skill started.
const ReturnHomeDelay = 350 * time.Millisecond

type PostImpactResult struct {
	Dest  Coord
	Delay time.Duration
	OK    bool
}

// ResolvePostImpact repositions a unit after a displacement skill. home is
// where the skill started (that cell counts as vacated), from is where the
// unit is now and target is the struck cell. rng is only used for random
// landing; nil falls back to the global source.
func ResolvePostImpact(g Grid, pi *PostImpact, home, from, target Coord, rng *rand.Rand) PostImpactResult {
	stay := PostImpactResult{Dest: from}
	if pi == nil {
		return stay
	}
	switch pi.Behavior {
	case PostImpactReturnHome:
		return PostImpactResult{Dest: home, Delay: ReturnHomeDelay, OK: true}
	case PostImpactLandNearTarget:
		dest, ok := landNearTarget(g, pi, home, from, target, rng)
		if !ok {
			return stay
		}
		return PostImpactResult{Dest: dest, OK: true}
	default:
		return stay
	}
}

func landNearTarget(g Grid, pi *PostImpact, home, from, target Coord, rng *rand.Rand) (Coord, bool) {
	free := func(c Coord) bool {
		return g.InBounds(c) && (c == home || !isOccupied(g, c))
	}

	// Nothing on the board lies further than BoardSize-1 from target.
	r := min(pi.Radius, BoardSize-1)
	var cands []Coord
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c := Coord{X: target.X + dx, Y: target.Y + dy}
			if c == target || !free(c) {
				continue
			}
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return from, false
	}

	if pi.Random {
		shuffle := rand.Shuffle
		if rng != nil {
			shuffle = rng.Shuffle
		}
		shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
		return cands[0], true
	}

	if v := approach(from, target); v != (Vec{}) {
		behind := target.Add(v)
		for _, c := range cands {
			if c == behind {
				return behind, true
			}
		}
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if Chebyshev(c, target) < Chebyshev(best, target) {
			best = c
		}
	}
	return best, true
}
