package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"azul/internal/domain"
)

var colorStyles = map[domain.Color]pterm.Color{
	domain.Black:  pterm.FgDarkGray,
	domain.Aqua:   pterm.FgCyan,
	domain.Blue:   pterm.FgBlue,
	domain.Yellow: pterm.FgYellow,
	domain.Red:    pterm.FgRed,
}

func tileGlyph(c domain.Color) string {
	return colorStyles[c].Sprint("■" + c.String())
}

func pileString(pile []domain.Color) string {
	if len(pile) == 0 {
		return pterm.Gray("empty")
	}
	parts := make([]string, len(pile))
	for i, c := range pile {
		parts[i] = tileGlyph(c)
	}
	return strings.Join(parts, " ")
}

func printPiles(s *domain.State) {
	pterm.DefaultSection.Printfln("Round %d", s.Round)
	for i, f := range s.Factories {
		pterm.Printfln("  factory %d: %s", i+1, pileString(f))
	}
	pterm.Printfln("  center  0: %s", pileString(s.Center))
}

func boardPanel(s *domain.State, player int, name string, active bool) string {
	board := s.Boards[player]
	var sb strings.Builder

	title := name
	if active {
		title = pterm.LightGreen(name + " (to move)")
	}
	sb.WriteString(title + "\n")

	for row := 0; row < domain.WallSize; row++ {
		line := board.PatternLines[row]
		for i := 0; i < domain.LineCapacity(row)-len(line); i++ {
			sb.WriteString(" .")
		}
		for _, c := range line {
			sb.WriteString(" " + colorStyles[c].Sprint("■"))
		}
		sb.WriteString("  │ ")
		for col := 0; col < domain.WallSize; col++ {
			wc := domain.WallColor(row, col)
			if board.Wall[row][col] {
				sb.WriteString(colorStyles[wc].Sprint("■"))
			} else {
				sb.WriteString(colorStyles[wc].Sprint("·"))
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("floor: %s\n", pileString(board.FloorLine)))
	return sb.String()
}

func printBoards(s *domain.State, names []string) {
	panels := make([]pterm.Panel, 0, len(names))
	for p, name := range names {
		panels = append(panels, pterm.Panel{Data: boardPanel(s, p, name, p == s.CurrentPlayer)})
	}
	_ = pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()
}

func printScores(names []string, scores []int) {
	rows := pterm.TableData{{"player", "wall tiles"}}
	for i, name := range names {
		rows = append(rows, []string{name, fmt.Sprintf("%d", scores[i])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
