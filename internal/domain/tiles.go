package domain

import "strings"

// Color is one of the five tile colors in the game.
type Color int

const (
	Black Color = iota
	Aqua
	Blue
	Yellow
	Red
)

// Colors lists every tile color once, in declaration order.
var Colors = [NumColors]Color{Black, Aqua, Blue, Yellow, Red}

const (
	// NumColors is the number of distinct tile colors.
	NumColors = 5
	// TilesPerColor is how many tiles of each color the bag starts with.
	TilesPerColor = 20
	// WallSize is the side length of the scoring wall and also the number
	// of pattern lines per player.
	WallSize = 5
	// FactoryCapacity is how many tiles a freshly dealt factory holds.
	FactoryCapacity = 4
)

var colorNames = [NumColors]string{"BLACK", "AQUA", "BLUE", "YELLOW", "RED"}

// String returns the canonical upper-case color name.
func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return "INVALID"
	}
	return colorNames[c]
}

// ParseColor matches a color name case-insensitively.
func ParseColor(s string) (Color, error) {
	name := strings.ToUpper(s)
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, ErrInvalidColor
}

// wallRow0 is the color order of the top wall row. Every following row is
// the previous one shifted right by one cell, so the same color never
// repeats within a row or column.
var wallRow0 = [WallSize]Color{Blue, Yellow, Red, Black, Aqua}

// WallColor returns the color fixed by the wall layout at (row, col).
func WallColor(row, col int) Color {
	return wallRow0[((col-row)%WallSize+WallSize)%WallSize]
}

// WallColumn returns the column of the given row whose fixed color is c.
func WallColumn(row int, c Color) int {
	for col := 0; col < WallSize; col++ {
		if WallColor(row, col) == c {
			return col
		}
	}
	panic("domain: color missing from wall row")
}
