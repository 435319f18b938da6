package domain

import "math/rand"

// Phase is the lifecycle stage of a match.
type Phase string

const (
	// PhaseCreated is the pre-deal state right after construction.
	PhaseCreated Phase = "created"
	// PhaseDrafting is the active state where players draft and place tiles.
	PhaseDrafting Phase = "drafting"
	// PhaseFinished is the terminal state.
	PhaseFinished Phase = "finished"
)

// Rules selects between ruleset variants without changing the data model.
// The zero value reproduces the observed behavior: overflow goes to an
// uncapped floor line and the starting player never changes.
type Rules struct {
	// StrictCapacity rejects moves whose picked tiles exceed the target
	// line's free space instead of overflowing to the floor line.
	StrictCapacity bool `json:"strictCapacity"`
	// FloorLineCap bounds the floor line; 0 means unbounded and floor
	// tiles persist across rounds. When set, overflow beyond the cap goes
	// to the discard pile and the floor empties into the discard at every
	// round boundary.
	FloorLineCap int `json:"floorLineCap"`
	// FirstPlayerMarker makes the first player to draft from the center
	// each round the starting player of the next round.
	FirstPlayerMarker bool `json:"firstPlayerMarker"`
}

// Board is one player's personal area.
type Board struct {
	// PatternLines[i] has capacity i+1 and holds one color while occupied.
	PatternLines [WallSize][]Color `json:"patternLines"`
	// Wall is the occupancy grid over the fixed wall layout.
	Wall [WallSize][WallSize]bool `json:"wall"`
	// FloorLine collects penalty tiles that overflowed a pattern line.
	FloorLine []Color `json:"floorLine"`
}

// State is the authoritative state of one match. It is a plain value: the
// engine never mutates a caller's State, it clones and returns a new one.
type State struct {
	Phase          Phase   `json:"phase"`
	Rules          Rules   `json:"rules"`
	NumPlayers     int     `json:"numPlayers"`
	CurrentPlayer  int     `json:"currentPlayer"`
	StartingPlayer int     `json:"startingPlayer"`
	Round          int     `json:"round"`
	Bag            []Color `json:"bag"`
	Center         []Color `json:"center"`
	// Factories holds numFactories piles of at most FactoryCapacity tiles.
	Factories [][]Color `json:"factories"`
	Boards    []Board   `json:"boards"`
	Discard   []Color   `json:"discard"`
	// FirstFromCenter is the first player to draft from the center this
	// round, or -1. Only consulted when Rules.FirstPlayerMarker is set.
	FirstFromCenter int `json:"firstFromCenter"`
}

// NewMatch builds a match for 2-4 players with a freshly shuffled bag and
// dealt factories, ready for the first move.
func NewMatch(numPlayers int, rules Rules, rng *rand.Rand) (*State, error) {
	if _, err := FactoryCount(numPlayers); err != nil {
		return nil, err
	}

	s := &State{
		Phase:           PhaseCreated,
		Rules:           rules,
		NumPlayers:      numPlayers,
		Round:           1,
		Bag:             NewBag(rng),
		Boards:          make([]Board, numPlayers),
		FirstFromCenter: -1,
	}
	if err := dealFactories(s, rng); err != nil {
		return nil, err
	}
	s.Phase = PhaseDrafting
	return s, nil
}

// Clone returns a deep copy sharing no piles with the receiver.
func (s *State) Clone() *State {
	out := *s
	out.Bag = clonePile(s.Bag)
	out.Center = clonePile(s.Center)
	out.Discard = clonePile(s.Discard)
	out.Factories = make([][]Color, len(s.Factories))
	for i, f := range s.Factories {
		out.Factories[i] = clonePile(f)
	}
	out.Boards = make([]Board, len(s.Boards))
	for i, b := range s.Boards {
		nb := b
		for j, line := range b.PatternLines {
			nb.PatternLines[j] = clonePile(line)
		}
		nb.FloorLine = clonePile(b.FloorLine)
		out.Boards[i] = nb
	}
	return &out
}

func clonePile(p []Color) []Color {
	if p == nil {
		return nil
	}
	return append([]Color{}, p...)
}

// IsFinished reports whether the match reached its terminal state.
func (s *State) IsFinished() bool {
	return s.Phase == PhaseFinished
}

// ForceEnd marks the match finished regardless of the end condition. The
// reason is the caller's to record; the core only flips the phase.
func (s *State) ForceEnd() {
	s.Phase = PhaseFinished
}

// LineCapacity is the tile capacity of pattern line i.
func LineCapacity(i int) int {
	return i + 1
}

// TileCensus counts every tile of each color across the bag, center,
// factories, pattern lines, floor lines, discard pile and walls. In any
// reachable state each count equals TilesPerColor.
func TileCensus(s *State) [NumColors]int {
	var census [NumColors]int
	countPile := func(p []Color) {
		for _, c := range p {
			census[c]++
		}
	}
	countPile(s.Bag)
	countPile(s.Center)
	countPile(s.Discard)
	for _, f := range s.Factories {
		countPile(f)
	}
	for _, b := range s.Boards {
		for _, line := range b.PatternLines {
			countPile(line)
		}
		countPile(b.FloorLine)
		for row := 0; row < WallSize; row++ {
			for col := 0; col < WallSize; col++ {
				if b.Wall[row][col] {
					census[WallColor(row, col)]++
				}
			}
		}
	}
	return census
}
