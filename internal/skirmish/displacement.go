package skirmish

import "math/rand"

// Displacement is the outcome of a dash along one direction.
type Displacement struct {
	Landing Coord
	Path    []Coord
	Hits    []Coord
}

func (d Displacement) Moved() bool { return len(d.Path) > 0 }

// TraceDisplacement walks up to RangeMax cells along v. StopOnHit halts in
// front of the first occupied cell, PassThrough records it and keeps going;
// otherwise occupied cells follow the usual leap/over-flag passage rules.
// The unit always lands on the last free cell it walked.
func TraceDisplacement(g Grid, owner OwnerID, origin Coord, v Vec, p Pattern, cp *Capability) Displacement {
	if cp == nil {
		cp = &Capability{}
	}
	d := Displacement{Landing: origin}
	_, hi, ok := p.bounds()
	if !ok || v == (Vec{}) {
		return d
	}

	var walked []Coord
	landAt := 0
	for step := 1; step <= hi; step++ {
		c := origin.Step(v, step)
		if !g.InBounds(c) {
			break
		}
		if !isOccupied(g, c) {
			walked = append(walked, c)
			landAt = len(walked)
			continue
		}
		if p.StopOnHit {
			d.Hits = append(d.Hits, c)
			break
		}
		if p.PassThrough {
			d.Hits = append(d.Hits, c)
			walked = append(walked, c)
			continue
		}
		if !canPass(g, owner, c, p.Leap, cp) {
			break
		}
		walked = append(walked, c)
	}

	d.Path = walked[:landAt]
	if landAt > 0 {
		d.Landing = walked[landAt-1]
	}
	return d
}

// SkillOutcome previews a displacement skill end to end.
type SkillOutcome struct {
	Displacement
	Target Coord
	Final  PostImpactResult
}

// SkillPreview aims cp at dest. The first pattern with a vector pointing at
// dest and dest within its range is used. dest only aims: the dash still
// walks to RangeMax or its first stop, which may be short of or past dest.
// The struck cell is the first hit, or the landing cell when nothing was hit.
func SkillPreview(g Grid, owner OwnerID, origin, dest Coord, cp *Capability, rng *rand.Rand) (SkillOutcome, bool) {
	if cp.empty() || origin == dest {
		return SkillOutcome{}, false
	}
	dist := Chebyshev(origin, dest)
	for _, p := range cp.Patterns {
		if p.Direction == DirectionAny || !p.InRange(dist) {
			continue
		}
		v, ok := alignedVector(DirectionVectors(p.Direction, owner), origin, dest, dist)
		if !ok {
			continue
		}
		d := TraceDisplacement(g, owner, origin, v, p, cp)
		out := SkillOutcome{Displacement: d, Target: d.Landing}
		if len(d.Hits) > 0 {
			out.Target = d.Hits[0]
		}
		out.Final = ResolvePostImpact(g, cp.PostImpact, origin, d.Landing, out.Target, rng)
		return out, true
	}
	return SkillOutcome{}, false
}
