package bot

import (
	"azul/internal/config"
	"azul/internal/domain"
)

// Greedy scores every legal move with tunable weights and plays the best
// one. Ties go to the earlier line, which keeps it deterministic.
type Greedy struct {
	Weights config.BotWeights
}

// NewGreedy returns a Greedy brain with the default weights.
func NewGreedy() *Greedy {
	return &Greedy{Weights: config.DefaultBotWeights()}
}

// ChooseMove implements Brain.
func (g *Greedy) ChooseMove(s *domain.State, player int) (domain.Move, error) {
	moves := LegalMoves(s, player)
	if len(moves) == 0 {
		return domain.Move{}, ErrNoLegalMoves
	}

	best := moves[0]
	bestScore := g.scoreMove(s, player, best)
	for _, m := range moves[1:] {
		if score := g.scoreMove(s, player, m); score > bestScore {
			best, bestScore = m, score
		}
	}
	return best, nil
}

func (g *Greedy) scoreMove(s *domain.State, player int, m domain.Move) int {
	pile := s.Center
	if m.Source > 0 {
		pile = s.Factories[m.Source-1]
	}
	picked := countColor(pile, m.Color)

	board := s.Boards[player]
	free := domain.LineCapacity(m.Line) - len(board.PatternLines[m.Line])
	staged := picked
	if staged > free {
		staged = free
	}
	overflow := picked - staged

	score := staged*g.Weights.WStage + overflow*g.Weights.WOverflow
	if staged == free {
		score += g.Weights.WComplete
	}
	for col := 0; col < domain.WallSize; col++ {
		if board.Wall[m.Line][col] {
			score += g.Weights.WWallProgress
		}
	}
	return score
}
