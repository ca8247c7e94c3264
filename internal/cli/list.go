package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2018/pkg/days"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// listCommand creates the list command, which shows the implemented days.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List implemented days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printDayTable(cmd.OutOrStdout(), days.All, c.Config.InputDir)
			return nil
		},
	}
}

// printDayTable renders the puzzles as a table. When inputDir is set, a
// column shows the file each day reads.
func printDayTable(w io.Writer, all []*puzzle.Puzzle, inputDir string) {
	headers := []string{"Day", "Title"}
	if inputDir != "" {
		headers = append(headers, "Input")
	}

	rows := make([][]string, 0, len(all))
	for _, p := range all {
		row := []string{strconv.Itoa(p.Day), p.Title}
		if inputDir != "" {
			row = append(row, p.Name()+".txt")
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleNumber
			case col == 2:
				return StyleDim
			default:
				return StyleValue
			}
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %d days implemented", len(all))))
}
