package domain

import "math/rand"

// NewBag returns a uniformly shuffled bag of TilesPerColor tiles of each
// color. rand.Shuffle is a Fisher-Yates shuffle, so the order is unbiased.
func NewBag(rng *rand.Rand) []Color {
	bag := make([]Color, 0, NumColors*TilesPerColor)
	for _, c := range Colors {
		for i := 0; i < TilesPerColor; i++ {
			bag = append(bag, c)
		}
	}
	rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
	return bag
}

// FactoryCount returns the number of factory displays for the player count:
// 5, 7 or 9 for 2, 3 or 4 players.
func FactoryCount(numPlayers int) (int, error) {
	switch numPlayers {
	case 2:
		return 5, nil
	case 3:
		return 7, nil
	case 4:
		return 9, nil
	default:
		return 0, ErrInvalidPlayerCount
	}
}

// dealFactories fills every factory with FactoryCapacity tiles drawn from
// the front of the bag. When the bag runs short the discard pile is
// reshuffled into it first; only if that still leaves too few tiles does
// the deal fail with ErrBagExhausted.
func dealFactories(s *State, rng *rand.Rand) error {
	n, err := FactoryCount(s.NumPlayers)
	if err != nil {
		return err
	}

	need := n * FactoryCapacity
	if len(s.Bag) < need {
		refillBag(s, rng)
	}
	if len(s.Bag) < need {
		return ErrBagExhausted
	}

	s.Factories = make([][]Color, n)
	for i := 0; i < n; i++ {
		s.Factories[i] = append([]Color{}, s.Bag[:FactoryCapacity]...)
		s.Bag = s.Bag[FactoryCapacity:]
	}
	return nil
}

// refillBag shuffles the discard pile back into the bag.
func refillBag(s *State, rng *rand.Rand) {
	if len(s.Discard) == 0 {
		return
	}
	s.Bag = append(s.Bag, s.Discard...)
	s.Discard = nil
	rng.Shuffle(len(s.Bag), func(i, j int) { s.Bag[i], s.Bag[j] = s.Bag[j], s.Bag[i] })
}
