package domain

import "math/rand"

// Apply executes one move for actingPlayer and returns the resulting state.
// The input state is cloned first and never mutated, so any error leaves it
// exactly as it was and the caller may retry with a corrected move.
func Apply(s *State, token string, actingPlayer int, rng *rand.Rand) (*State, error) {
	if s.IsFinished() {
		return nil, ErrMatchFinished
	}
	if actingPlayer != s.CurrentPlayer {
		return nil, ErrNotCurrentPlayer
	}

	move, err := ParseMove(token, len(s.Factories))
	if err != nil {
		return nil, err
	}

	next := s.Clone()
	if err := pickTiles(next, move, rng); err != nil {
		return nil, err
	}
	return next, nil
}

// pickTiles runs the draft-and-place pipeline for the current player.
// Legality is checked in full before any pile is touched.
func pickTiles(s *State, move Move, rng *rand.Rand) error {
	pile := s.Center
	if move.Source > 0 {
		pile = s.Factories[move.Source-1]
	}

	picked := 0
	for _, c := range pile {
		if c == move.Color {
			picked++
		}
	}
	if picked == 0 {
		return ErrColorNotInPile
	}

	board := &s.Boards[s.CurrentPlayer]
	line := board.PatternLines[move.Line]
	if len(line) > 0 && line[0] != move.Color {
		return ErrLineColorConflict
	}
	if board.Wall[move.Line][WallColumn(move.Line, move.Color)] {
		return ErrWallAlreadyHasColor
	}
	free := LineCapacity(move.Line) - len(line)
	if s.Rules.StrictCapacity && picked > free {
		return ErrLineOverflow
	}

	// Commit: stage picked tiles up to the line's free space, overflow to
	// the floor line, and fold the remainder of a factory into the center.
	remainder := make([]Color, 0, len(pile)-picked)
	for _, c := range pile {
		if c != move.Color {
			remainder = append(remainder, c)
		}
	}

	staged := picked
	if staged > free {
		staged = free
	}
	for i := 0; i < staged; i++ {
		board.PatternLines[move.Line] = append(board.PatternLines[move.Line], move.Color)
	}
	for i := staged; i < picked; i++ {
		if s.Rules.FloorLineCap > 0 && len(board.FloorLine) >= s.Rules.FloorLineCap {
			s.Discard = append(s.Discard, move.Color)
		} else {
			board.FloorLine = append(board.FloorLine, move.Color)
		}
	}

	if move.Source > 0 {
		s.Factories[move.Source-1] = nil
		s.Center = append(s.Center, remainder...)
	} else {
		s.Center = remainder
		if s.FirstFromCenter < 0 {
			s.FirstFromCenter = s.CurrentPlayer
		}
	}

	return advanceTurn(s, rng)
}

// advanceTurn rotates to the next player, or runs the round boundary when
// the center and every factory are empty.
func advanceTurn(s *State, rng *rand.Rand) error {
	if !roundOver(s) {
		s.CurrentPlayer = (s.CurrentPlayer + 1) % s.NumPlayers
		return nil
	}

	tileWalls(s)
	if ShouldEnd(s) {
		s.Phase = PhaseFinished
		return nil
	}

	if s.Rules.FirstPlayerMarker && s.FirstFromCenter >= 0 {
		s.StartingPlayer = s.FirstFromCenter
	}
	s.FirstFromCenter = -1
	s.CurrentPlayer = s.StartingPlayer
	s.Round++
	return dealFactories(s, rng)
}

func roundOver(s *State) bool {
	if len(s.Center) > 0 {
		return false
	}
	for _, f := range s.Factories {
		if len(f) > 0 {
			return false
		}
	}
	return true
}
