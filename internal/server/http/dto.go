package httpserver

import "skirmish/internal/skirmish"

type NewBoardRequest struct {
	Position string `json:"position"` // empty: blank board
}

type NewBoardResponse struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	Revision int    `json:"revision"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type UnitDTO struct {
	At    skirmish.Coord `json:"at"`
	ID    string         `json:"id"`
	Kind  string         `json:"kind"`
	Owner string         `json:"owner"`
}

type StateResponse struct {
	Position string    `json:"position"`
	Revision int       `json:"revision"`
	Units    []UnitDTO `json:"units"`
}

// SyncRequest replaces the board with the server's latest snapshot.
type SyncRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
}

type TargetsRequest struct {
	GameID string         `json:"game_id"`
	From   skirmish.Coord `json:"from"`
}

type TargetsResponse struct {
	Kind    string           `json:"kind"`
	Owner   string           `json:"owner"`
	Targets []skirmish.Coord `json:"targets"`
}

type ValidateMoveRequest struct {
	GameID string         `json:"game_id"`
	From   skirmish.Coord `json:"from"`
	To     skirmish.Coord `json:"to"`
}

type ValidateMoveResponse struct {
	Valid   bool             `json:"valid"`
	Landing skirmish.Coord   `json:"landing"` // From when not valid
	Route   []skirmish.Coord `json:"route,omitempty"`
}

type SkillPreviewRequest struct {
	GameID string         `json:"game_id"`
	From   skirmish.Coord `json:"from"`
	To     skirmish.Coord `json:"to"`
	Skill  string         `json:"skill"`
	Seed   int64          `json:"seed"` // random landing; 0 picks a time-based seed
}

type SkillPreviewResponse struct {
	Valid         bool             `json:"valid"`
	Path          []skirmish.Coord `json:"path"`
	Hits          []skirmish.Coord `json:"hits"`
	Landing       skirmish.Coord   `json:"landing"`
	Target        skirmish.Coord   `json:"target"`
	Final         skirmish.Coord   `json:"final"`
	ReturnDelayMs int64            `json:"return_delay_ms"`
}

func unitsToDTO(b *skirmish.Board) []UnitDTO {
	placed := b.Units()
	out := make([]UnitDTO, len(placed))
	for i, p := range placed {
		out[i] = UnitDTO{At: p.At, ID: p.Unit.ID, Kind: p.Unit.Kind, Owner: string(p.Unit.Owner)}
	}
	return out
}

func orEmpty(cs []skirmish.Coord) []skirmish.Coord {
	if cs == nil {
		return []skirmish.Coord{}
	}
	return cs
}
