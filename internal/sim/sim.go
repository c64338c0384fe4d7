// Package sim drives random skirmishes through the resolution engine. It
// feeds the soak and parity-fixture tools.
package sim

import (
	"fmt"
	"math/rand"

	"skirmish/internal/catalog"
	"skirmish/internal/skirmish"
)

// homeRows: the primary side starts on the low rows since its forward is +y.
func homeRows(owner skirmish.OwnerID) [2]int {
	if owner.IsPrimary() {
		return [2]int{0, 1}
	}
	return [2]int{skirmish.BoardSize - 1, skirmish.BoardSize - 2}
}

// Opening scatters perSide random units of each side over its two home rows.
func Opening(rng *rand.Rand, cat *catalog.Catalog, perSide int) *skirmish.Board {
	b := skirmish.NewBoard()
	kinds := cat.Kinds()
	if len(kinds) == 0 {
		return b
	}
	perSide = min(perSide, 2*skirmish.BoardSize)
	for _, owner := range []skirmish.OwnerID{skirmish.OwnerPrimary, skirmish.OwnerSecondary} {
		rows := homeRows(owner)
		cells := rng.Perm(2 * skirmish.BoardSize)[:perSide]
		for i, cell := range cells {
			at := skirmish.Coord{X: cell % skirmish.BoardSize, Y: rows[cell/skirmish.BoardSize]}
			kind := kinds[rng.Intn(len(kinds))]
			b.Place(at, &skirmish.Unit{
				ID:    fmt.Sprintf("%s-%s-%d", owner, kind, i),
				Kind:  kind,
				Owner: owner,
			})
		}
	}
	return b
}

type Move struct {
	Unit     *skirmish.Unit
	From, To skirmish.Coord
}

// RandomMove picks a random unit of owner that has somewhere to go and a
// random cell from its highlight set.
func RandomMove(rng *rand.Rand, cat *catalog.Catalog, b *skirmish.Board, owner skirmish.OwnerID) (Move, bool) {
	var mine []skirmish.Placed
	for _, p := range b.Units() {
		if p.Unit.Owner == owner {
			mine = append(mine, p)
		}
	}
	rng.Shuffle(len(mine), func(i, j int) { mine[i], mine[j] = mine[j], mine[i] })
	for _, p := range mine {
		targets := skirmish.ComputeMoveTargets(b, owner, p.At, cat.Move(p.Unit.Kind)).Sorted()
		if len(targets) == 0 {
			continue
		}
		return Move{Unit: p.Unit, From: p.At, To: targets[rng.Intn(len(targets))]}, true
	}
	return Move{}, false
}

// Apply returns a new board with mv played; b is left untouched.
func Apply(b *skirmish.Board, mv Move) *skirmish.Board {
	nb := b.Clone()
	u := nb.Remove(mv.From)
	nb.Place(mv.To, u)
	return nb
}

type Violation struct {
	Unit   string
	From   skirmish.Coord
	Cell   skirmish.Coord
	Reason string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s at %v -> %v: %s", v.Unit, v.From, v.Cell, v.Reason)
}

// CheckInvariants cross-checks highlight sets against the point checks for
// every unit and every cell of b.
func CheckInvariants(cat *catalog.Catalog, b *skirmish.Board) []Violation {
	var out []Violation
	for _, p := range b.Units() {
		mv := cat.Move(p.Unit.Kind)
		targets := skirmish.ComputeMoveTargets(b, p.Unit.Owner, p.At, mv)
		bad := func(c skirmish.Coord, reason string) {
			out = append(out, Violation{Unit: p.Unit.ID, From: p.At, Cell: c, Reason: reason})
		}
		for y := 0; y < skirmish.BoardSize; y++ {
			for x := 0; x < skirmish.BoardSize; x++ {
				c := skirmish.Coord{X: x, Y: y}
				valid := skirmish.IsValidMovementTarget(b, p.Unit.Owner, p.At, c, mv)
				landing := skirmish.CalculateMovementPath(b, p.Unit.Owner, p.At, c, mv)
				switch {
				case targets.Has(c) && b.UnitAt(c) != nil:
					bad(c, "highlighted an occupied cell")
				case targets.Has(c) != valid:
					bad(c, fmt.Sprintf("highlight=%v but point check=%v", targets.Has(c), valid))
				case valid && landing != c:
					bad(c, fmt.Sprintf("valid move landed on %v", landing))
				case !valid && landing != p.At:
					bad(c, fmt.Sprintf("invalid move landed on %v", landing))
				}
			}
		}
		for c := range skirmish.ComputeAttackTargets(b, p.At) {
			if !b.InBounds(c) || skirmish.Chebyshev(p.At, c) != 1 {
				bad(c, "attack target outside the neighbour ring")
			}
		}
	}
	return out
}
