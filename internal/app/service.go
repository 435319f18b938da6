package app

import (
	"math/rand"
	"time"

	"azul/internal/domain"
)

// Service contains the match use-cases operating on domain state.
type Service struct {
	rng    *rand.Rand
	policy domain.ScorePolicy
}

// NewService constructs a Service with the provided rng and score policy,
// defaulting to a time-seeded rng and the wall-count stand-in policy.
func NewService(rng *rand.Rand, policy domain.ScorePolicy) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if policy == nil {
		policy = domain.WallCountPolicy{}
	}
	return &Service{rng: rng, policy: policy}
}

// CreateMatch builds a fresh match state with dealt factories.
func (s *Service) CreateMatch(numPlayers int, rules domain.Rules) (*domain.State, []Event, error) {
	st, err := domain.NewMatch(numPlayers, rules, s.rng)
	if err != nil {
		return nil, nil, err
	}
	events := []Event{{
		Kind: EventMatchCreated,
		Payload: MatchCreatedPayload{
			NumPlayers:   numPlayers,
			NumFactories: len(st.Factories),
			Rules:        rules,
		},
	}}
	return st, events, nil
}

// Apply executes one move token for the acting player and emits the events
// a front-end needs to render what happened. The input state is unchanged.
func (s *Service) Apply(st *domain.State, token string, actingPlayer int) (*domain.State, []Event, error) {
	next, err := domain.Apply(st, token, actingPlayer, s.rng)
	if err != nil {
		return nil, nil, err
	}
	// The token parsed inside Apply, so this cannot fail now.
	move, _ := domain.ParseMove(token, len(st.Factories))

	events := []Event{{
		Kind: EventTilesDrafted,
		Payload: TilesDraftedPayload{
			Player:     actingPlayer,
			Move:       move,
			NextPlayer: next.CurrentPlayer,
		},
	}}

	if next.Round > st.Round || next.IsFinished() {
		events = append(events, Event{
			Kind:    EventWallTiled,
			Payload: WallTiledPayload{Placements: wallPlacements(st, next)},
		})
		events = append(events, Event{
			Kind:    EventRoundEnded,
			Payload: RoundEndedPayload{Round: st.Round},
		})
	}
	if next.IsFinished() {
		events = append(events, Event{
			Kind:    EventMatchEnded,
			Payload: MatchEndedPayload{Scores: s.Score(next)},
		})
	}
	return next, events, nil
}

// wallPlacements recovers the wall-tiling step of a round boundary by
// comparing the walls before and after the move. A cell that turned on
// came from a complete pattern line, which keeps one tile and discards
// the rest.
func wallPlacements(before, after *domain.State) []WallPlacement {
	var placements []WallPlacement
	for p := range after.Boards {
		for row := 0; row < domain.WallSize; row++ {
			for col := 0; col < domain.WallSize; col++ {
				if !after.Boards[p].Wall[row][col] || before.Boards[p].Wall[row][col] {
					continue
				}
				placements = append(placements, WallPlacement{
					Player:    p,
					Line:      row,
					Column:    col,
					Color:     domain.WallColor(row, col),
					Discarded: domain.LineCapacity(row) - 1,
				})
			}
		}
	}
	return placements
}

// ForceEnd marks the match finished without requiring the end condition.
func (s *Service) ForceEnd(st *domain.State, reason string) (*domain.State, []Event) {
	next := st.Clone()
	next.ForceEnd()
	return next, []Event{{
		Kind:    EventMatchForced,
		Payload: MatchForcedPayload{Reason: reason},
	}}
}

// Score runs the configured score policy over the state.
func (s *Service) Score(st *domain.State) []int {
	return s.policy.Score(st)
}
