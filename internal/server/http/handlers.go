package httpserver

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"skirmish/internal/catalog"
	"skirmish/internal/server/game"
	"skirmish/internal/skirmish"
	"skirmish/pkg/logger"
)

// Handler serves the /api/* preview endpoints. Every query runs against the
// session's current snapshot; nothing here mutates a board.
type Handler struct {
	cat   *catalog.Catalog
	games *game.Manager
}

func NewHandler(cat *catalog.Catalog, games *game.Manager) *Handler {
	return &Handler{cat: cat, games: games}
}

func (h *Handler) Games() *game.Manager { return h.games }

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var fn http.HandlerFunc
	switch r.URL.Path {
	case "/api/new_board":
		fn = h.handleNewBoard
	case "/api/state":
		fn = h.handleState
	case "/api/sync":
		fn = h.handleSync
	case "/api/move_targets":
		fn = h.handleMoveTargets
	case "/api/validate_move":
		fn = h.handleValidateMove
	case "/api/attack_targets":
		fn = h.handleAttackTargets
	case "/api/skill_preview":
		fn = h.handleSkillPreview
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	fn(w, r)
}

func (h *Handler) handleNewBoard(w http.ResponseWriter, r *http.Request) {
	var req NewBoardRequest
	if !decode(w, r, &req) {
		return
	}
	b := skirmish.NewBoard()
	if req.Position != "" {
		var err error
		if b, err = h.cat.DecodeBoard(req.Position); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	g := h.games.NewGame(b)
	writeJSON(w, NewBoardResponse{
		GameID:   g.ID,
		Position: h.cat.EncodeBoard(g.Board),
		Revision: g.Revision,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		gameError(w, err)
		return
	}
	writeJSON(w, h.stateOf(g))
}

func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if !decode(w, r, &req) {
		return
	}
	b, err := h.cat.DecodeBoard(req.Position)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	g, err := h.games.Update(req.GameID, b)
	if err != nil {
		gameError(w, err)
		return
	}
	writeJSON(w, h.stateOf(g))
}

func (h *Handler) handleMoveTargets(w http.ResponseWriter, r *http.Request) {
	var req TargetsRequest
	if !decode(w, r, &req) {
		return
	}
	g, u, ok := h.unitAt(w, req.GameID, req.From)
	if !ok {
		return
	}
	set := skirmish.ComputeMoveTargets(g.Board, u.Owner, req.From, h.cat.Move(u.Kind))
	writeJSON(w, TargetsResponse{Kind: u.Kind, Owner: string(u.Owner), Targets: orEmpty(set.Sorted())})
}

func (h *Handler) handleValidateMove(w http.ResponseWriter, r *http.Request) {
	var req ValidateMoveRequest
	if !decode(w, r, &req) {
		return
	}
	g, u, ok := h.unitAt(w, req.GameID, req.From)
	if !ok {
		return
	}
	mv := h.cat.Move(u.Kind)
	resp := ValidateMoveResponse{
		Landing: skirmish.CalculateMovementPath(g.Board, u.Owner, req.From, req.To, mv),
	}
	resp.Route, resp.Valid = skirmish.MovementRoute(g.Board, u.Owner, req.From, req.To, mv)
	writeJSON(w, resp)
}

func (h *Handler) handleAttackTargets(w http.ResponseWriter, r *http.Request) {
	var req TargetsRequest
	if !decode(w, r, &req) {
		return
	}
	g, u, ok := h.unitAt(w, req.GameID, req.From)
	if !ok {
		return
	}
	set := skirmish.ComputeAttackTargets(g.Board, req.From)
	writeJSON(w, TargetsResponse{Kind: u.Kind, Owner: string(u.Owner), Targets: orEmpty(set.Sorted())})
}

func (h *Handler) handleSkillPreview(w http.ResponseWriter, r *http.Request) {
	var req SkillPreviewRequest
	if !decode(w, r, &req) {
		return
	}
	g, u, ok := h.unitAt(w, req.GameID, req.From)
	if !ok {
		return
	}
	ut, _ := h.cat.Unit(u.Kind)
	cp := ut.Skill(req.Skill)
	if cp == nil {
		http.Error(w, "unknown skill", http.StatusBadRequest)
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	out, valid := skirmish.SkillPreview(g.Board, u.Owner, req.From, req.To, cp, rand.New(rand.NewSource(seed)))
	if !valid {
		writeJSON(w, SkillPreviewResponse{Landing: req.From, Target: req.From, Final: req.From,
			Path: []skirmish.Coord{}, Hits: []skirmish.Coord{}})
		return
	}
	writeJSON(w, SkillPreviewResponse{
		Valid:         true,
		Path:          orEmpty(out.Path),
		Hits:          orEmpty(out.Hits),
		Landing:       out.Landing,
		Target:        out.Target,
		Final:         out.Final.Dest,
		ReturnDelayMs: out.Final.Delay.Milliseconds(),
	})
}

// unitAt loads the session and the unit standing on from, writing the HTTP
// error itself when either is missing.
func (h *Handler) unitAt(w http.ResponseWriter, gameID string, from skirmish.Coord) (game.GameState, *skirmish.Unit, bool) {
	g, err := h.games.Get(gameID)
	if err != nil {
		gameError(w, err)
		return g, nil, false
	}
	u := g.Board.UnitAt(from)
	if u == nil {
		http.Error(w, "no unit at from", http.StatusBadRequest)
		return g, nil, false
	}
	return g, u, true
}

func (h *Handler) stateOf(g game.GameState) StateResponse {
	return StateResponse{
		Position: h.cat.EncodeBoard(g.Board),
		Revision: g.Revision,
		Units:    unitsToDTO(g.Board),
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func gameError(w http.ResponseWriter, err error) {
	if errors.Is(err, game.ErrGameNotFound) {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}
	logger.Log.WithError(err).Error("session lookup failed")
	http.Error(w, "session unavailable", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.WithError(err).Warn("writeJSON error")
	}
}
