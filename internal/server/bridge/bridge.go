package main

/*
#include <stdbool.h>
#include <stdlib.h>
*/
import "C"
import (
	"encoding/json"
	"sync/atomic"
	"time"
	"unsafe"

	"skirmish/internal/catalog"
	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

// Native entry points for game clients that link the engine as a shared
// library. Boards cross the boundary as snapshot strings; coordinate sets come
// back as JSON arrays that the caller releases with SkirmishFree.

var active atomic.Pointer[catalog.Catalog]

const slowCall = 50 * time.Millisecond

//export SkirmishInit
func SkirmishInit(catalogPath *C.char) C.bool {
	path := C.GoString(catalogPath)
	var (
		cat *catalog.Catalog
		err error
	)
	if path == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(path)
	}
	if err != nil {
		logger.Log.WithError(err).Error("bridge: catalog not loaded")
		return C.bool(false)
	}
	active.Store(cat)
	return C.bool(true)
}

//export SkirmishMoveTargets
func SkirmishMoveTargets(snapshot *C.char, x, y C.int) *C.char {
	start := time.Now()
	defer slowLog("SkirmishMoveTargets", start)

	b, u, cat, ok := unitAt(snapshot, x, y)
	if !ok {
		return coordsJSON(nil)
	}
	from := skirmish.Coord{X: int(x), Y: int(y)}
	return coordsJSON(skirmish.ComputeMoveTargets(b, u.Owner, from, cat.Move(u.Kind)).Sorted())
}

//export SkirmishIsValidMove
func SkirmishIsValidMove(snapshot *C.char, fx, fy, tx, ty C.int) C.bool {
	b, u, cat, ok := unitAt(snapshot, fx, fy)
	if !ok {
		return C.bool(false)
	}
	from := skirmish.Coord{X: int(fx), Y: int(fy)}
	to := skirmish.Coord{X: int(tx), Y: int(ty)}
	return C.bool(skirmish.IsValidMovementTarget(b, u.Owner, from, to, cat.Move(u.Kind)))
}

// SkirmishMovePath writes the landing cell to outX/outY; it is the source
// cell when the move is not legal.
//
//export SkirmishMovePath
func SkirmishMovePath(snapshot *C.char, fx, fy, tx, ty C.int, outX, outY *C.int) {
	from := skirmish.Coord{X: int(fx), Y: int(fy)}
	land := from
	if b, u, cat, ok := unitAt(snapshot, fx, fy); ok {
		to := skirmish.Coord{X: int(tx), Y: int(ty)}
		land = skirmish.CalculateMovementPath(b, u.Owner, from, to, cat.Move(u.Kind))
	}
	*outX = C.int(land.X)
	*outY = C.int(land.Y)
}

//export SkirmishAttackTargets
func SkirmishAttackTargets(x, y C.int) *C.char {
	return coordsJSON(skirmish.ComputeAttackTargets(skirmish.NewBoard(), skirmish.Coord{X: int(x), Y: int(y)}).Sorted())
}

//export SkirmishFree
func SkirmishFree(p *C.char) {
	C.free(unsafe.Pointer(p))
}

func unitAt(snapshot *C.char, x, y C.int) (*skirmish.Board, *skirmish.Unit, *catalog.Catalog, bool) {
	cat := active.Load()
	if cat == nil {
		logger.Log.Warn("bridge: SkirmishInit not called")
		return nil, nil, nil, false
	}
	b, err := cat.DecodeBoard(C.GoString(snapshot))
	if err != nil {
		logger.Log.WithError(err).Warn("bridge: bad snapshot")
		return nil, nil, nil, false
	}
	u := b.UnitAt(skirmish.Coord{X: int(x), Y: int(y)})
	if u == nil {
		return nil, nil, nil, false
	}
	return b, u, cat, true
}

func coordsJSON(cs []skirmish.Coord) *C.char {
	if cs == nil {
		cs = []skirmish.Coord{}
	}
	data, err := json.Marshal(cs)
	if err != nil {
		data = []byte("[]")
	}
	return C.CString(string(data))
}

func slowLog(name string, start time.Time) {
	if elapsed := time.Since(start); elapsed > slowCall {
		logger.Log.WithField("took", elapsed).Warnf("bridge: slow %s", name)
	}
}

func main() {}
