package skirmish

// canReach dispatches the point check for a single pattern.
func canReach(g Grid, owner OwnerID, origin, dest Coord, p Pattern, cp *Capability) bool {
	if p.Direction == DirectionAny {
		return CanReachWithBFS(g, owner, origin, dest, p, cp)
	}
	return CanReachWithPattern(g, owner, origin, dest, p, cp)
}

// ComputeMoveTargets is the highlight set: the union over all patterns of
// the unoccupied cells each one reaches.
func ComputeMoveTargets(g Grid, owner OwnerID, origin Coord, cp *Capability) CoordSet {
	out := make(CoordSet)
	if cp.empty() || !g.InBounds(origin) {
		return out
	}
	for _, p := range cp.Patterns {
		if p.Direction == DirectionAny {
			bfsTargets(g, owner, origin, p, cp, out)
		} else {
			lineTargets(g, owner, origin, p, cp, out)
		}
	}
	return out
}

// IsValidMovementTarget: origin and dest are on the board, dest is free, and
// some pattern reaches it.
func IsValidMovementTarget(g Grid, owner OwnerID, origin, dest Coord, cp *Capability) bool {
	if cp.empty() || !g.InBounds(origin) || !canLand(g, dest) {
		return false
	}
	for _, p := range cp.Patterns {
		if canReach(g, owner, origin, dest, p, cp) {
			return true
		}
	}
	return false
}

// CalculateMovementPath returns the landing cell for a proposed move, or
// origin when the move is not legal.
func CalculateMovementPath(g Grid, owner OwnerID, origin, dest Coord, cp *Capability) Coord {
	if IsValidMovementTarget(g, owner, origin, dest, cp) {
		return dest
	}
	return origin
}

// MovementRoute returns the cells walked from origin (excluded) to dest
// (included) by the first pattern in declaration order that accepts dest.
func MovementRoute(g Grid, owner OwnerID, origin, dest Coord, cp *Capability) ([]Coord, bool) {
	if cp.empty() || !g.InBounds(origin) || !canLand(g, dest) {
		return nil, false
	}
	for _, p := range cp.Patterns {
		if p.Direction == DirectionAny {
			if !CanReachWithBFS(g, owner, origin, dest, p, cp) {
				continue
			}
			rm, _ := searchAny(g, owner, origin, p, cp)
			return rm.route(dest), true
		}
		if !CanReachWithPattern(g, owner, origin, dest, p, cp) {
			continue
		}
		dist := Chebyshev(origin, dest)
		v, _ := alignedVector(DirectionVectors(p.Direction, owner), origin, dest, dist)
		return lineRoute(origin, v, dist), true
	}
	return nil, false
}

// ComputeAttackTargets is the fixed 8-neighbour ring clipped to the board.
// It does not consult the unit's attack patterns.
// TODO: switch to pattern-driven targeting once the server implements it.
func ComputeAttackTargets(g Grid, origin Coord) CoordSet {
	out := make(CoordSet)
	for _, v := range neighbourDirs {
		c := origin.Add(v)
		if g.InBounds(c) {
			out.Add(c)
		}
	}
	return out
}
