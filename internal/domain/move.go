package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a validated draft move: take every tile of Color from Source
// (0 = center, 1..N = factory) and stage them on pattern line Line.
type Move struct {
	Source int   `json:"source"`
	Color  Color `json:"color"`
	Line   int   `json:"line"`
}

// Token renders the move in its wire form, e.g. "0_RED_3".
func (m Move) Token() string {
	return fmt.Sprintf("%d_%s_%d", m.Source, m.Color, m.Line)
}

// ParseMove parses a "SOURCE_COLOR_LINE" token against the number of
// factories in play. It checks shape only, never board legality.
func ParseMove(token string, numFactories int) (Move, error) {
	parts := strings.Split(token, "_")
	if len(parts) != 3 {
		return Move{}, ErrMalformedToken
	}

	source, err := strconv.Atoi(parts[0])
	if err != nil || source < 0 || source > numFactories {
		return Move{}, ErrInvalidSource
	}

	color, err := ParseColor(parts[1])
	if err != nil {
		return Move{}, ErrInvalidColor
	}

	line, err := strconv.Atoi(parts[2])
	if err != nil || line < 0 || line >= WallSize {
		return Move{}, ErrInvalidLine
	}

	return Move{Source: source, Color: color, Line: line}, nil
}
