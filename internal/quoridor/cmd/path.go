package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"laptudirm.com/x/quoridor/internal/util"
	"laptudirm.com/x/quoridor/pkg/board"
)

var pathMarks = [2]rune{'>', '<'}

// quoridor path
func Path() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path [log]",
		Short: "Print the shortest paths of both players",
		Args:  cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}

			b, _, err := loadBoard(cmd, path)
			if err != nil {
				return err
			}

			marks := make(map[board.Cell]rune)
			for _, player := range []board.Player{board.Player0, board.Player1} {
				cells, length := board.ShortestPath(&b, player)
				if length == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: no path\n", player)
					continue
				}

				turns := make([]string, 0, len(cells))
				for _, cell := range cells[1:] {
					turns = append(turns, board.Move(cell).String())
					marks[cell] = pathMarks[player]
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d steps: %s\n",
					player, cells.Steps(), strings.Join(turns, " "))
			}

			fmt.Fprint(cmd.OutOrStdout(), util.Render(colors(cmd), &b, marks))
			return nil
		},
	}

	boardFlags(cmd)
	return cmd
}
