package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2018/pkg/days"
	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// runCommand creates the run command, which solves a single day.
func (c *CLI) runCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "run <day>",
		Short: "Solve a day's puzzle",
		Long: `Solve a day's puzzle and print the answers to both parts.

Input is read from --input, "-" for stdin, or <input_dir>/dayNN.txt when
input_dir is configured. Without either, input is read from stdin.`,
		Example: `  aoc run 7 --input inputs/day07.txt
  aoc run 7 --workers 2 --base-duration 0 < example.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := errors.ParseDay(args[0])
			if err != nil {
				return err
			}
			p := days.Find(day)
			if p == nil {
				return errors.New(errors.ErrCodeUnknownDay, "day %d not yet implemented", day)
			}
			return c.solve(cmd.Context(), p, input, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", `puzzle input file ("-" for stdin)`)

	return cmd
}

// solve reads the input for p, runs it and prints the answer to out.
func (c *CLI) solve(ctx context.Context, p *puzzle.Puzzle, input string, stdin io.Reader, out io.Writer) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	src := c.inputSource(p, input)
	loggerFromContext(ctx).Debug("Reading input", "day", p.Day, "source", src)

	lines, err := readInput(stdin, src)
	if err != nil {
		return err
	}

	ans, err := puzzle.Run(ctx, p, lines, opts)
	if err != nil {
		return err
	}
	for _, line := range ans.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}
