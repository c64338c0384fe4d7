package main

import (
	"flag"
	"fmt"
	"strings"
	"unicode"

	"skirmish/internal/catalog"
	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

const demoSnapshot = "FLRJSWLF/8/8/3s4/8/2W5/8/flrjswlf"

func main() {
	snap := flag.String("snapshot", demoSnapshot, "board snapshot, first row is y=0")
	x := flag.Int("x", 4, "selected unit column")
	y := flag.Int("y", 0, "selected unit row")
	flag.Parse()

	logger.Init()
	cat, err := catalog.Default()
	if err != nil {
		logger.Log.WithError(err).Fatal("load catalog")
	}
	b, err := cat.DecodeBoard(*snap)
	if err != nil {
		logger.Log.WithError(err).Fatal("decode snapshot")
	}

	from := skirmish.Coord{X: *x, Y: *y}
	u := b.UnitAt(from)
	if u == nil {
		logger.Log.Fatalf("no unit at %v", from)
	}
	moves := skirmish.ComputeMoveTargets(b, u.Owner, from, cat.Move(u.Kind))
	attacks := skirmish.ComputeAttackTargets(b, from)

	fmt.Println("Snapshot:", cat.EncodeBoard(b))
	fmt.Printf("Selected: %s (owner %q) at %v\n", u.Kind, u.Owner, from)
	fmt.Println("Move targets:", moves.Sorted())
	fmt.Println("Attack targets:", attacks.Sorted())
	fmt.Print(render(cat, b, from, moves, attacks))
}

// render draws the board top row last so the home side sits at the bottom.
// '*' marks a move target, 'x' an attacked occupied cell.
func render(cat *catalog.Catalog, b *skirmish.Board, from skirmish.Coord, moves, attacks skirmish.CoordSet) string {
	var sb strings.Builder
	for y := skirmish.BoardSize - 1; y >= 0; y-- {
		fmt.Fprintf(&sb, "%d ", y)
		for x := 0; x < skirmish.BoardSize; x++ {
			c := skirmish.Coord{X: x, Y: y}
			ch := '.'
			if u := b.UnitAt(c); u != nil {
				if sym, ok := cat.SymbolForKind(u.Kind); ok {
					ch = sym
					if u.Owner.IsPrimary() {
						ch = unicode.ToUpper(sym)
					}
				}
				if attacks.Has(c) {
					ch = 'x'
				}
			} else if moves.Has(c) {
				ch = '*'
			}
			if c == from {
				sb.WriteString("[" + string(ch) + "]")
			} else {
				sb.WriteString(" " + string(ch) + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for x := 0; x < skirmish.BoardSize; x++ {
		fmt.Fprintf(&sb, " %d ", x)
	}
	sb.WriteByte('\n')
	return sb.String()
}
