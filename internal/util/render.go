package util

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"laptudirm.com/x/quoridor/pkg/board"
)

// Render draws the board for the terminal, with coordinates in the turn
// notation. Placed walls are yellow and previewed walls magenta. Cells in
// marks are drawn with their rune in green.
func Render(au aurora.Aurora, b *board.Board, marks map[board.Cell]rune) string {
	n := b.Size()

	var str strings.Builder

	str.WriteString("    ")
	for j := 0; j < n; j++ {
		if j > 0 {
			str.WriteByte(' ')
		}
		str.WriteByte(byte('a' + j))
	}
	str.WriteByte('\n')

	border := "   +" + strings.Repeat("-", 2*n-1) + "+\n"
	str.WriteString(border)

	for i := 0; i < n; i++ {
		fmt.Fprintf(&str, "%2d |", i+1)
		for j := 0; j < n; j++ {
			str.WriteString(renderCell(au, b, board.Cell{Row: i, Col: j}, marks))

			if j == n-1 {
				str.WriteString("|")
			} else {
				str.WriteString(renderWall(au, b.VerticalWall(i, j), "|"))
			}
		}
		str.WriteByte('\n')

		if i == n-1 {
			break
		}

		str.WriteString("   |")
		for j := 0; j < n; j++ {
			str.WriteString(renderWall(au, b.HorizontalWall(i, j), "-"))

			switch {
			case j == n-1:
				str.WriteString("|")
			case b.HorizontalWall(i, j) == board.WallStart:
				str.WriteString(renderWall(au, board.WallStart, "-"))
			case b.VerticalWall(i, j) == board.WallStart:
				str.WriteString(renderWall(au, board.WallStart, "|"))
			default:
				str.WriteString(" ")
			}
		}
		str.WriteByte('\n')
	}

	str.WriteString(border)
	return str.String()
}

func renderCell(au aurora.Aurora, b *board.Board, cell board.Cell, marks map[board.Cell]rune) string {
	switch cell {
	case b.Position(board.Player0):
		return au.Bold(au.Blue("0")).String()
	case b.Position(board.Player1):
		return au.Bold(au.Red("1")).String()
	}

	if mark, found := marks[cell]; found {
		return au.Green(string(mark)).String()
	}

	return "."
}

func renderWall(au aurora.Aurora, state board.WallState, segment string) string {
	switch {
	case state.Blocks():
		return au.Yellow(segment).String()
	case state == board.WallPreview:
		return au.Magenta(segment).String()
	default:
		return " "
	}
}
