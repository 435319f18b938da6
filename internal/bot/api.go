package bot

import (
	"errors"

	"azul/internal/domain"
)

// ErrNoLegalMoves is returned when a player has no move at all; under the
// uncapped ruleset a board can strand its owner.
var ErrNoLegalMoves = errors.New("no legal moves available")

// Brain chooses a move for a player from the current state.
type Brain interface {
	ChooseMove(s *domain.State, player int) (domain.Move, error)
}

// LegalMoves enumerates every move the player could legally make, honoring
// the state's ruleset.
func LegalMoves(s *domain.State, player int) []domain.Move {
	var out []domain.Move
	board := s.Boards[player]

	for source := 0; source <= len(s.Factories); source++ {
		pile := s.Center
		if source > 0 {
			pile = s.Factories[source-1]
		}
		for _, c := range domain.Colors {
			picked := countColor(pile, c)
			if picked == 0 {
				continue
			}
			for line := 0; line < domain.WallSize; line++ {
				staged := board.PatternLines[line]
				if len(staged) > 0 && staged[0] != c {
					continue
				}
				if board.Wall[line][domain.WallColumn(line, c)] {
					continue
				}
				if s.Rules.StrictCapacity && picked > domain.LineCapacity(line)-len(staged) {
					continue
				}
				out = append(out, domain.Move{Source: source, Color: c, Line: line})
			}
		}
	}
	return out
}

func countColor(pile []domain.Color, c domain.Color) int {
	n := 0
	for _, pc := range pile {
		if pc == c {
			n++
		}
	}
	return n
}
