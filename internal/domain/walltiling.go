package domain

// tileWalls runs the round-end tiling step for every player: each complete
// pattern line sends one tile to its wall cell and the rest to the discard
// pile. Incomplete lines carry over untouched.
func tileWalls(s *State) {
	for p := range s.Boards {
		board := &s.Boards[p]
		for i, line := range board.PatternLines {
			if len(line) != LineCapacity(i) {
				continue
			}
			color := line[0]
			board.Wall[i][WallColumn(i, color)] = true
			for range line[1:] {
				s.Discard = append(s.Discard, color)
			}
			board.PatternLines[i] = nil
		}
		// Canonical ruleset: floor penalties are assessed per round, so
		// the floor line empties into the discard pile. The observed
		// ruleset keeps floor tiles forever.
		if s.Rules.FloorLineCap > 0 {
			s.Discard = append(s.Discard, board.FloorLine...)
			board.FloorLine = nil
		}
	}
}

// ShouldEnd reports the end condition: some player's wall has a fully
// occupied row.
func ShouldEnd(s *State) bool {
	for _, b := range s.Boards {
		for row := 0; row < WallSize; row++ {
			full := true
			for col := 0; col < WallSize; col++ {
				if !b.Wall[row][col] {
					full = false
					break
				}
			}
			if full {
				return true
			}
		}
	}
	return false
}

// ScorePolicy computes a per-player score for a match. The point formula is
// supplied by the caller; the core only guarantees the hook exists once a
// match is finished.
type ScorePolicy interface {
	Score(s *State) []int
}

// WallCountPolicy scores one point per placed wall tile. It is a stand-in
// policy so the state machine is usable without a real scoring formula.
type WallCountPolicy struct{}

// Score implements ScorePolicy.
func (WallCountPolicy) Score(s *State) []int {
	scores := make([]int, s.NumPlayers)
	for p, b := range s.Boards {
		for row := 0; row < WallSize; row++ {
			for col := 0; col < WallSize; col++ {
				if b.Wall[row][col] {
					scores[p]++
				}
			}
		}
	}
	return scores
}
