package skirmish

// reachMap is the result of one breadth-first search: shortest step count
// and parent link for every cell entered.
type reachMap struct {
	origin Coord
	depth  map[Coord]int
	parent map[Coord]Coord
}

// searchAny runs the 8-neighbour BFS used by Any patterns. Occupied cells
// are entered only when the pattern leaps or an over-flag allows it; their
// own occupancy is not a landing test here.
func searchAny(g Grid, owner OwnerID, origin Coord, p Pattern, cp *Capability) (*reachMap, bool) {
	_, hi, ok := p.bounds()
	if !ok {
		return nil, false
	}
	rm := &reachMap{
		origin: origin,
		depth:  map[Coord]int{origin: 0},
		parent: make(map[Coord]Coord),
	}
	queue := []Coord{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := rm.depth[cur]
		if d >= hi {
			continue
		}
		for _, v := range neighbourDirs {
			n := cur.Add(v)
			if !g.InBounds(n) {
				continue
			}
			if _, seen := rm.depth[n]; seen {
				continue
			}
			if !canPass(g, owner, n, p.Leap, cp) {
				continue
			}
			rm.depth[n] = d + 1
			rm.parent[n] = cur
			queue = append(queue, n)
		}
	}
	return rm, true
}

func (rm *reachMap) reached(c Coord, p Pattern) bool {
	d, ok := rm.depth[c]
	return ok && c != rm.origin && p.InRange(d)
}

// route walks parent links back from dest; origin is excluded.
func (rm *reachMap) route(dest Coord) []Coord {
	var rev []Coord
	for c := dest; c != rm.origin; c = rm.parent[c] {
		rev = append(rev, c)
	}
	out := make([]Coord, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}

// CanReachWithBFS is the point check for an Any pattern. dest may itself be
// occupied; callers that need a landing cell check that separately.
func CanReachWithBFS(g Grid, owner OwnerID, origin, dest Coord, p Pattern, cp *Capability) bool {
	if cp == nil || p.Direction != DirectionAny || !g.InBounds(origin) || !g.InBounds(dest) {
		return false
	}
	_, hi, ok := p.bounds()
	if !ok || Chebyshev(origin, dest) > hi {
		return false
	}
	rm, ok := searchAny(g, owner, origin, p, cp)
	return ok && rm.reached(dest, p)
}

func bfsTargets(g Grid, owner OwnerID, origin Coord, p Pattern, cp *Capability, out CoordSet) {
	rm, ok := searchAny(g, owner, origin, p, cp)
	if !ok {
		return
	}
	for c := range rm.depth {
		if rm.reached(c, p) && !isOccupied(g, c) {
			out.Add(c)
		}
	}
}
