package skirmish

// sameSide treats both home-side spellings as one owner.
func sameSide(a, b OwnerID) bool {
	return a == b || (a.IsPrimary() && b.IsPrimary())
}

// canPass reports whether a walk may cross c without landing on it.
// Leap ignores occupancy; otherwise the capability's over-flags decide.
func canPass(g Grid, owner OwnerID, c Coord, leap bool, cp *Capability) bool {
	occ, ok := g.OccupantAt(c)
	if !ok || leap {
		return true
	}
	if sameSide(occ.OwnerID(), owner) {
		return cp.OverFriendly
	}
	return cp.OverEnemy
}

// canLand: a movement never ends on an occupied cell, whatever the flags.
func canLand(g Grid, c Coord) bool {
	return g.InBounds(c) && !isOccupied(g, c)
}

// traceLine replays a walk of exactly steps cells along v. Any blocked
// intermediate cell rejects the whole direction; the last cell must be free.
func traceLine(g Grid, owner OwnerID, origin Coord, v Vec, steps int, p Pattern, cp *Capability) bool {
	for step := 1; step < steps; step++ {
		c := origin.Step(v, step)
		if !g.InBounds(c) {
			return false
		}
		if !canPass(g, owner, c, p.Leap, cp) {
			return false
		}
	}
	return canLand(g, origin.Step(v, steps))
}

// lineTargets adds every landing cell of a directional pattern to out.
func lineTargets(g Grid, owner OwnerID, origin Coord, p Pattern, cp *Capability, out CoordSet) {
	lo, hi, ok := p.bounds()
	if !ok {
		return
	}
	for _, v := range DirectionVectors(p.Direction, owner) {
		for step := 1; step <= hi; step++ {
			c := origin.Step(v, step)
			if !g.InBounds(c) {
				break
			}
			if !isOccupied(g, c) {
				if step >= lo {
					out.Add(c)
				}
				continue
			}
			if !canPass(g, owner, c, p.Leap, cp) {
				break
			}
		}
	}
}

// CanReachWithPattern is the point check for a directional pattern.
func CanReachWithPattern(g Grid, owner OwnerID, origin, dest Coord, p Pattern, cp *Capability) bool {
	if cp == nil || p.Direction == DirectionAny || !g.InBounds(origin) {
		return false
	}
	dist := Chebyshev(origin, dest)
	if !p.InRange(dist) {
		return false
	}
	v, ok := alignedVector(DirectionVectors(p.Direction, owner), origin, dest, dist)
	if !ok {
		return false
	}
	return traceLine(g, owner, origin, v, dist, p, cp)
}

func lineRoute(origin Coord, v Vec, steps int) []Coord {
	route := make([]Coord, 0, steps)
	for step := 1; step <= steps; step++ {
		route = append(route, origin.Step(v, step))
	}
	return route
}
