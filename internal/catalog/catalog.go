package catalog

import (
	_ "embed"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

//go:embed default.yaml
var defaultCatalog []byte

// UnitType is everything the engine knows about one kind of unit.
type UnitType struct {
	Name   string
	Symbol rune
	Move   *skirmish.Capability
	Attack *skirmish.Capability
	Skills map[string]*skirmish.Capability
}

// Skill returns the named displacement capability, or nil.
func (u *UnitType) Skill(name string) *skirmish.Capability {
	if u == nil {
		return nil
	}
	return u.Skills[name]
}

// Catalog is immutable after loading and safe for concurrent readers.
type Catalog struct {
	units    map[string]*UnitType
	bySymbol map[rune]string
}

// Default parses the built-in roster.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return c, nil
}

// Parse reads a YAML (or JSON) catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parse catalog")
	}

	c := &Catalog{
		units:    make(map[string]*UnitType, len(doc.Units)),
		bySymbol: make(map[rune]string, len(doc.Units)),
	}
	for _, name := range sortedKeys(doc.Units) {
		ud := doc.Units[name]
		if strings.TrimSpace(name) == "" {
			return nil, errors.New("unit with empty name")
		}
		ut, err := ud.build(name)
		if err != nil {
			return nil, errors.Wrapf(err, "unit %s", name)
		}
		if ut.Symbol != 0 {
			if other, dup := c.bySymbol[ut.Symbol]; dup {
				return nil, errors.Errorf("unit %s: symbol %q already used by %s", name, ut.Symbol, other)
			}
			c.bySymbol[ut.Symbol] = name
		} else {
			logger.Log.WithField("unit", name).Warn("unit has no symbol and cannot appear in snapshots")
		}
		c.units[name] = ut
	}
	return c, nil
}

func (c *Catalog) Unit(kind string) (*UnitType, bool) {
	u, ok := c.units[kind]
	return u, ok
}

// Move returns the movement capability for kind, nil when unknown.
func (c *Catalog) Move(kind string) *skirmish.Capability {
	if u, ok := c.units[kind]; ok {
		return u.Move
	}
	return nil
}

func (c *Catalog) KindForSymbol(sym rune) (string, bool) {
	k, ok := c.bySymbol[unicode.ToLower(sym)]
	return k, ok
}

func (c *Catalog) SymbolForKind(kind string) (rune, bool) {
	u, ok := c.units[kind]
	if !ok || u.Symbol == 0 {
		return 0, false
	}
	return u.Symbol, true
}

// Kinds lists unit kinds in name order.
func (c *Catalog) Kinds() []string {
	return sortedKeys(c.units)
}

// DecodeBoard reads a snapshot string using this catalog's symbols.
func (c *Catalog) DecodeBoard(s string) (*skirmish.Board, error) {
	return skirmish.DecodeBoard(s, c.KindForSymbol)
}

// EncodeBoard writes b with this catalog's symbols. Units whose kind has no
// symbol cannot be written and are left out with a warning.
func (c *Catalog) EncodeBoard(b *skirmish.Board) string {
	return skirmish.EncodeBoard(b, func(kind string) (rune, bool) {
		sym, ok := c.SymbolForKind(kind)
		if !ok {
			logger.Log.WithField("kind", kind).Warn("unit has no snapshot symbol, dropped from position")
		}
		return sym, ok
	})
}

type fileDoc struct {
	Units map[string]unitDoc `yaml:"units"`
}

type unitDoc struct {
	Symbol string                    `yaml:"symbol"`
	Move   *capabilityDoc            `yaml:"move"`
	Attack *capabilityDoc            `yaml:"attack"`
	Skills map[string]*capabilityDoc `yaml:"skills"`
}

type capabilityDoc struct {
	OverFriendly bool           `yaml:"overFriendly"`
	OverEnemy    bool           `yaml:"overEnemy"`
	Patterns     []patternDoc   `yaml:"patterns"`
	PostImpact   *postImpactDoc `yaml:"postImpact"`
}

type patternDoc struct {
	Direction   string `yaml:"direction"`
	Range       []int  `yaml:"range"`
	RangeMin    *int   `yaml:"rangeMin"`
	RangeMax    *int   `yaml:"rangeMax"`
	Leap        bool   `yaml:"leap"`
	StopOnHit   bool   `yaml:"stopOnHit"`
	PassThrough bool   `yaml:"passThrough"`
}

type postImpactDoc struct {
	Behavior string `yaml:"behavior"`
	Radius   int    `yaml:"radius"`
	Random   bool   `yaml:"random"`
}

func (ud unitDoc) build(name string) (*UnitType, error) {
	ut := &UnitType{Name: name}

	if ud.Symbol != "" {
		sym, size := utf8.DecodeRuneInString(ud.Symbol)
		if size != len(ud.Symbol) || !unicode.IsLetter(sym) {
			return nil, errors.Errorf("symbol %q must be a single letter", ud.Symbol)
		}
		ut.Symbol = unicode.ToLower(sym)
	}

	var err error
	if ut.Move, err = ud.Move.build(name, "move"); err != nil {
		return nil, err
	}
	if ut.Attack, err = ud.Attack.build(name, "attack"); err != nil {
		return nil, err
	}
	if len(ud.Skills) > 0 {
		ut.Skills = make(map[string]*skirmish.Capability, len(ud.Skills))
		for _, skill := range sortedKeys(ud.Skills) {
			cp, err := ud.Skills[skill].build(name, skill)
			if err != nil {
				return nil, err
			}
			ut.Skills[skill] = cp
		}
	}
	return ut, nil
}

// build returns nil for an absent block; the engine reads that as "no capability".
func (cd *capabilityDoc) build(unit, field string) (*skirmish.Capability, error) {
	if cd == nil {
		return nil, nil
	}
	cp := &skirmish.Capability{
		OverFriendly: cd.OverFriendly,
		OverEnemy:    cd.OverEnemy,
		Patterns:     make([]skirmish.Pattern, 0, len(cd.Patterns)),
	}
	for i, pd := range cd.Patterns {
		p, err := pd.build()
		if err != nil {
			return nil, errors.Wrapf(err, "%s pattern %d", field, i)
		}
		if p.Direction == skirmish.DirectionUnknown {
			logger.Log.WithFields(logrus.Fields{
				"unit":      unit,
				"field":     field,
				"direction": pd.Direction,
			}).Warn("unrecognised direction, pattern is inert")
		}
		cp.Patterns = append(cp.Patterns, p)
	}
	if cd.PostImpact != nil {
		cp.PostImpact = cd.PostImpact.build(unit, field)
	}
	return cp, nil
}

func (pd patternDoc) build() (skirmish.Pattern, error) {
	p := skirmish.Pattern{
		Direction:   ParseDirection(pd.Direction),
		RangeMin:    skirmish.MinRange,
		Leap:        pd.Leap,
		StopOnHit:   pd.StopOnHit,
		PassThrough: pd.PassThrough,
	}
	switch len(pd.Range) {
	case 0:
	case 1:
		p.RangeMax = pd.Range[0]
	case 2:
		p.RangeMin, p.RangeMax = pd.Range[0], pd.Range[1]
	default:
		return p, errors.Errorf("range wants [max] or [min, max], got %v", pd.Range)
	}
	if pd.RangeMin != nil {
		p.RangeMin = *pd.RangeMin
	}
	if pd.RangeMax != nil {
		p.RangeMax = *pd.RangeMax
	}
	return p, nil
}

func (pd *postImpactDoc) build(unit, field string) *skirmish.PostImpact {
	pi := &skirmish.PostImpact{Radius: pd.Radius, Random: pd.Random}
	switch strings.ToLower(strings.TrimSpace(pd.Behavior)) {
	case "returnhome", "return_home", "return":
		pi.Behavior = skirmish.PostImpactReturnHome
	case "landneartarget", "land_near_target", "land":
		pi.Behavior = skirmish.PostImpactLandNearTarget
		if pi.Radius < 1 {
			pi.Radius = 1
		}
	default:
		logger.Log.WithFields(logrus.Fields{
			"unit":     unit,
			"field":    field,
			"behavior": pd.Behavior,
		}).Warn("unrecognised post-impact behavior, ignored")
		return nil
	}
	return pi
}

// ParseDirection maps a configuration tag to a direction class. Unknown tags
// map to DirectionUnknown, which contributes no cells.
func ParseDirection(tag string) skirmish.DirectionClass {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "orthogonal", "ortho", "straight":
		return skirmish.DirectionOrthogonal
	case "diagonal", "diag":
		return skirmish.DirectionDiagonal
	case "forward":
		return skirmish.DirectionForward
	case "any", "all":
		return skirmish.DirectionAny
	default:
		return skirmish.DirectionUnknown
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
