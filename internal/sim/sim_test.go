package sim

import (
	"math/rand"
	"testing"

	"skirmish/internal/catalog"
	"skirmish/internal/skirmish"
)

func TestRandomSkirmishKeepsInvariants(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 5; game++ {
		b := Opening(rng, cat, 6)
		if n := len(b.Units()); n != 12 {
			t.Fatalf("opening placed %d units", n)
		}
		owner := skirmish.OwnerPrimary
		for turn := 0; turn < 30; turn++ {
			if v := CheckInvariants(cat, b); len(v) > 0 {
				t.Fatalf("game %d turn %d: %v", game, turn, v[0])
			}
			mv, ok := RandomMove(rng, cat, b, owner)
			if !ok {
				break
			}
			nb := Apply(b, mv)
			if b.UnitAt(mv.From) != mv.Unit {
				t.Fatalf("Apply mutated the source board")
			}
			if nb.UnitAt(mv.To) != mv.Unit || nb.UnitAt(mv.From) != nil {
				t.Fatalf("move %v not applied", mv)
			}
			b = nb
			if owner == skirmish.OwnerPrimary {
				owner = skirmish.OwnerSecondary
			} else {
				owner = skirmish.OwnerPrimary
			}
		}
	}
}

func TestOpeningUsesHomeRows(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	b := Opening(rand.New(rand.NewSource(1)), cat, 99)
	for _, p := range b.Units() {
		rows := homeRows(p.Unit.Owner)
		if p.At.Y != rows[0] && p.At.Y != rows[1] {
			t.Fatalf("%s placed off its home rows at %v", p.Unit.ID, p.At)
		}
	}
	if n := len(b.Units()); n != 4*skirmish.BoardSize {
		t.Fatalf("full opening: %d units", n)
	}
}
