package skirmish

var (
	orthogonalDirs = [4]Vec{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = [4]Vec{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	neighbourDirs  = [8]Vec{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// forwardDY: the home side advances towards +y, everyone else towards -y.
func forwardDY(owner OwnerID) int {
	if owner.IsPrimary() {
		return +1
	}
	return -1
}

// DirectionVectors returns a fresh slice of unit steps for class. Any yields
// the eight neighbours that seed a BFS; unknown classes yield nil.
func DirectionVectors(class DirectionClass, owner OwnerID) []Vec {
	switch class {
	case DirectionOrthogonal:
		return append([]Vec(nil), orthogonalDirs[:]...)
	case DirectionDiagonal:
		return append([]Vec(nil), diagonalDirs[:]...)
	case DirectionForward:
		return []Vec{{0, forwardDY(owner)}}
	case DirectionAny:
		return append([]Vec(nil), neighbourDirs[:]...)
	default:
		return nil
	}
}

// alignedVector finds the vector in vecs that reaches to from origin in
// exactly dist steps.
func alignedVector(vecs []Vec, origin, to Coord, dist int) (Vec, bool) {
	for _, v := range vecs {
		if origin.Step(v, dist) == to {
			return v, true
		}
	}
	return Vec{}, false
}

// approach is the normalised step from a towards b.
func approach(a, b Coord) Vec {
	return Vec{DX: sign(b.X - a.X), DY: sign(b.Y - a.Y)}
}
