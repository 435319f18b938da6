package app

import "azul/internal/domain"

// EventKind identifies emitted match events for front-end dispatch.
type EventKind string

const (
	EventMatchCreated EventKind = "match_created"
	EventTilesDrafted EventKind = "tiles_drafted"
	EventWallTiled    EventKind = "wall_tiled"
	EventRoundEnded   EventKind = "round_ended"
	EventMatchEnded   EventKind = "match_ended"
	EventMatchForced  EventKind = "match_force_ended"
)

// Event is a match event. Every pile and wall in the game is public, so
// events are always addressed to the whole table.
type Event struct {
	Kind    EventKind
	Payload any
}

type MatchCreatedPayload struct {
	NumPlayers   int
	NumFactories int
	Rules        domain.Rules
}

type TilesDraftedPayload struct {
	Player     int
	Move       domain.Move
	NextPlayer int
}

// WallPlacement records one completed pattern line tiled onto a wall.
type WallPlacement struct {
	Player int
	Line   int
	Column int
	Color  domain.Color
	// Discarded is how many surplus tiles from the line went to the
	// discard pile.
	Discarded int
}

type WallTiledPayload struct {
	Placements []WallPlacement
}

type RoundEndedPayload struct {
	// Round is the round that just ended.
	Round int
}

type MatchEndedPayload struct {
	Scores []int
}

type MatchForcedPayload struct {
	Reason string
}
