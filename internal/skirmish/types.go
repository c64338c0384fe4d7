package skirmish

// OwnerID identifies the player controlling a unit.
type OwnerID string

// Owner identities treated as the home side: forward points to +y for them.
const (
	OwnerPrimary    OwnerID = "0"
	OwnerPrimaryAlt OwnerID = ""
	OwnerSecondary  OwnerID = "1"
)

// IsPrimary reports whether o is the home-side identity.
func (o OwnerID) IsPrimary() bool {
	return o == OwnerPrimary || o == OwnerPrimaryAlt
}

// Occupant is whatever sits on a cell. The engine only needs its owner.
type Occupant interface {
	OwnerID() OwnerID
}

// Unit is the concrete occupant stored on a Board.
type Unit struct {
	ID    string
	Kind  string
	Owner OwnerID
}

func (u *Unit) OwnerID() OwnerID { return u.Owner }

type DirectionClass int8

const (
	DirectionUnknown DirectionClass = iota
	DirectionOrthogonal
	DirectionDiagonal
	DirectionForward
	DirectionAny
)

func (d DirectionClass) String() string {
	switch d {
	case DirectionOrthogonal:
		return "orthogonal"
	case DirectionDiagonal:
		return "diagonal"
	case DirectionForward:
		return "forward"
	case DirectionAny:
		return "any"
	default:
		return "unknown"
	}
}

// MinRange is the smallest step count a pattern can require.
const MinRange = 1

type Pattern struct {
	Direction   DirectionClass
	RangeMin    int
	RangeMax    int
	Leap        bool
	StopOnHit   bool
	PassThrough bool
}

// bounds returns the effective inclusive step range; ok is false when the
// pattern contributes no cells.
func (p Pattern) bounds() (lo, hi int, ok bool) {
	lo, hi = p.RangeMin, p.RangeMax
	if lo < MinRange {
		lo = MinRange
	}
	if hi < MinRange || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// InRange reports whether a Chebyshev distance falls in [RangeMin, RangeMax].
func (p Pattern) InRange(dist int) bool {
	lo, hi, ok := p.bounds()
	return ok && dist >= lo && dist <= hi
}

// Capability is one way a unit can move or strike.
type Capability struct {
	Patterns     []Pattern
	OverFriendly bool
	OverEnemy    bool
	PostImpact   *PostImpact
}

func (c *Capability) empty() bool {
	return c == nil || len(c.Patterns) == 0
}

type PostImpactBehavior int8

const (
	PostImpactNone PostImpactBehavior = iota
	PostImpactReturnHome
	PostImpactLandNearTarget
)

func (b PostImpactBehavior) String() string {
	switch b {
	case PostImpactReturnHome:
		return "returnHome"
	case PostImpactLandNearTarget:
		return "landNearTarget"
	default:
		return "none"
	}
}

type PostImpact struct {
	Behavior PostImpactBehavior
	Radius   int
	Random   bool
}
