package skirmish

import "sort"

const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Add(v Vec) Coord { return Coord{X: c.X + v.DX, Y: c.Y + v.DY} }

// Step returns the cell n unit steps away along v.
func (c Coord) Step(v Vec, n int) Coord {
	return Coord{X: c.X + v.DX*n, Y: c.Y + v.DY*n}
}

// Vec is a unit step on the grid.
type Vec struct {
	DX, DY int
}

// Chebyshev is the king-move distance used for every range check.
func Chebyshev(a, b Coord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// Grid is the read-only occupancy view every resolution call is given.
type Grid interface {
	InBounds(c Coord) bool
	OccupantAt(c Coord) (Occupant, bool)
}

// Board is an 8x8 occupancy snapshot.
type Board struct {
	Squares [NumSquares]*Unit
}

func NewBoard() *Board { return &Board{} }

func indexOf(c Coord) int { return c.Y*BoardSize + c.X }
func coordOf(sq int) Coord { return Coord{X: sq % BoardSize, Y: sq / BoardSize} }

func onBoard(c Coord) bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

func (b *Board) InBounds(c Coord) bool { return onBoard(c) }

func (b *Board) OccupantAt(c Coord) (Occupant, bool) {
	u := b.UnitAt(c)
	if u == nil {
		return nil, false
	}
	return u, true
}

// UnitAt returns the unit on c, or nil for empty or off-board cells.
func (b *Board) UnitAt(c Coord) *Unit {
	if !onBoard(c) {
		return nil
	}
	return b.Squares[indexOf(c)]
}

func (b *Board) OwnerOf(c Coord) (OwnerID, bool) {
	u := b.UnitAt(c)
	if u == nil {
		return "", false
	}
	return u.Owner, true
}

// Place puts u on c, replacing whatever was there. Off-board cells are ignored.
func (b *Board) Place(c Coord, u *Unit) bool {
	if !onBoard(c) {
		return false
	}
	b.Squares[indexOf(c)] = u
	return true
}

func (b *Board) Remove(c Coord) *Unit {
	if !onBoard(c) {
		return nil
	}
	u := b.Squares[indexOf(c)]
	b.Squares[indexOf(c)] = nil
	return u
}

// Clone copies the square table; units are shared since they are never mutated.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// Units lists occupied cells in square order.
func (b *Board) Units() []Placed {
	var out []Placed
	for sq, u := range b.Squares {
		if u != nil {
			out = append(out, Placed{At: coordOf(sq), Unit: u})
		}
	}
	return out
}

type Placed struct {
	At   Coord
	Unit *Unit
}

func isOccupied(g Grid, c Coord) bool {
	_, ok := g.OccupantAt(c)
	return ok
}

// CoordSet is an unordered set of grid cells.
type CoordSet map[Coord]struct{}

func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

func (s CoordSet) Len() int { return len(s) }

// Sorted returns the cells ordered by y, then x.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
