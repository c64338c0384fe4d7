package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if len(c.Kinds()) == 0 {
		t.Fatalf("default catalog is empty")
	}
	for _, kind := range c.Kinds() {
		sym, ok := c.SymbolForKind(kind)
		if !ok {
			t.Fatalf("%s has no symbol", kind)
		}
		if back, _ := c.KindForSymbol(sym); back != kind {
			t.Fatalf("symbol %q maps back to %q, want %q", sym, back, kind)
		}
	}
	lancer, ok := c.Unit("lancer")
	if !ok {
		t.Fatalf("lancer missing")
	}
	if !lancer.Move.OverFriendly || len(lancer.Move.Patterns) != 1 {
		t.Fatalf("lancer move: %+v", lancer.Move)
	}
	charge := lancer.Skill("charge")
	if charge == nil || charge.PostImpact == nil || charge.PostImpact.Behavior != skirmish.PostImpactLandNearTarget {
		t.Fatalf("lancer charge: %+v", charge)
	}
	if p := charge.Patterns[0]; !p.StopOnHit || p.RangeMin != 1 || p.RangeMax != 4 {
		t.Fatalf("charge pattern: %+v", p)
	}
}

func TestParsePatterns(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want skirmish.Pattern
	}{
		{
			name: "explicit bounds",
			yaml: "{ direction: Orthogonal, rangeMin: 2, rangeMax: 5, leap: true }",
			want: skirmish.Pattern{Direction: skirmish.DirectionOrthogonal, RangeMin: 2, RangeMax: 5, Leap: true},
		},
		{
			name: "range pair",
			yaml: "{ direction: diagonal, range: [1, 3], passThrough: true }",
			want: skirmish.Pattern{Direction: skirmish.DirectionDiagonal, RangeMin: 1, RangeMax: 3, PassThrough: true},
		},
		{
			name: "range max only",
			yaml: "{ direction: ANY, range: [2] }",
			want: skirmish.Pattern{Direction: skirmish.DirectionAny, RangeMin: 1, RangeMax: 2},
		},
		{
			name: "missing max is inert",
			yaml: "{ direction: forward, stopOnHit: true }",
			want: skirmish.Pattern{Direction: skirmish.DirectionForward, RangeMin: 1, StopOnHit: true},
		},
		{
			name: "unknown direction",
			yaml: "{ direction: spiral, rangeMax: 3 }",
			want: skirmish.Pattern{Direction: skirmish.DirectionUnknown, RangeMin: 1, RangeMax: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "units:\n  probe:\n    symbol: p\n    move:\n      patterns:\n        - " + tt.yaml + "\n"
			c, err := Parse([]byte(doc))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			mv := c.Move("probe")
			if mv == nil || len(mv.Patterns) != 1 {
				t.Fatalf("move capability: %+v", mv)
			}
			if mv.Patterns[0] != tt.want {
				t.Fatalf("pattern: got=%+v want=%+v", mv.Patterns[0], tt.want)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"units": {"rook": {"symbol": "R", "move": {"overEnemy": true, "patterns": [{"direction": "orthogonal", "rangeMin": 1, "rangeMax": 7}]}}}}`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if kind, ok := c.KindForSymbol('r'); !ok || kind != "rook" {
		t.Fatalf("symbol lookup: %q %v", kind, ok)
	}
	if mv := c.Move("rook"); mv == nil || !mv.OverEnemy || mv.Patterns[0].RangeMax != 7 {
		t.Fatalf("rook move: %+v", mv)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"malformed yaml", "units: [", "parse catalog"},
		{"duplicate symbol", "units:\n  a: {symbol: x}\n  b: {symbol: X}\n", "already used"},
		{"long symbol", "units:\n  a: {symbol: xy}\n", "single letter"},
		{"bad range", "units:\n  a:\n    move:\n      patterns:\n        - {direction: any, range: [1, 2, 3]}\n", "range wants"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAbsentBlocksAreNil(t *testing.T) {
	c, err := Parse([]byte("units:\n  statue:\n    symbol: t\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	u, _ := c.Unit("statue")
	if u.Move != nil || u.Attack != nil || u.Skill("any") != nil {
		t.Fatalf("expected nil capabilities: %+v", u)
	}
	if c.Move("ghost") != nil {
		t.Fatalf("unknown unit should have no move")
	}
}

func TestPostImpactParsing(t *testing.T) {
	doc := `
units:
  a:
    skills:
      hop:
        postImpact: { behavior: returnHome }
        patterns: [{ direction: forward, rangeMax: 1 }]
      slam:
        postImpact: { behavior: landNearTarget }
        patterns: [{ direction: forward, rangeMax: 1 }]
      odd:
        postImpact: { behavior: teleport }
        patterns: [{ direction: forward, rangeMax: 1 }]
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	u, _ := c.Unit("a")
	if pi := u.Skill("hop").PostImpact; pi == nil || pi.Behavior != skirmish.PostImpactReturnHome {
		t.Fatalf("hop: %+v", pi)
	}
	if pi := u.Skill("slam").PostImpact; pi == nil || pi.Radius != 1 {
		t.Fatalf("slam should default radius to 1: %+v", pi)
	}
	if pi := u.Skill("odd").PostImpact; pi != nil {
		t.Fatalf("unknown behavior should be dropped: %+v", pi)
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "units.yaml")
	if err := os.WriteFile(path, []byte("units:\n  a: {symbol: a}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := c.Unit("a"); !ok {
		t.Fatalf("unit a missing")
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSnapshotThroughCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	const snap = "FLRJSW2/8/8/8/8/8/8/2wsjrlf"
	b, err := c.DecodeBoard(snap)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u := b.UnitAt(skirmish.Coord{X: 1, Y: 0}); u == nil || u.Kind != "lancer" || !u.Owner.IsPrimary() {
		t.Fatalf("unexpected unit: %+v", u)
	}
	if got := c.EncodeBoard(b); got != snap {
		t.Fatalf("encode: got=%s want=%s", got, snap)
	}
}

func TestEncodeWarnsAboutUnitsWithoutSymbol(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWithOutput(&buf)
	t.Cleanup(logger.Init)

	c, err := Parse([]byte("units:\n  footman:\n    symbol: f\n  ghost: {}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b := skirmish.NewBoard()
	b.Place(skirmish.Coord{X: 0, Y: 0}, &skirmish.Unit{ID: "f", Kind: "footman", Owner: skirmish.OwnerPrimary})
	b.Place(skirmish.Coord{X: 1, Y: 0}, &skirmish.Unit{ID: "g", Kind: "ghost", Owner: skirmish.OwnerPrimary})

	buf.Reset()
	if got := c.EncodeBoard(b); got != "F7/8/8/8/8/8/8/8" {
		t.Fatalf("encode: got=%s", got)
	}
	if !strings.Contains(buf.String(), "kind=ghost") {
		t.Fatalf("expected a warning naming the dropped kind, got %q", buf.String())
	}
}
