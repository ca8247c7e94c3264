package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2018/pkg/dag"
	"github.com/matzehuels/aoc2018/pkg/days/day07"
	"github.com/matzehuels/aoc2018/pkg/errors"
	pkgio "github.com/matzehuels/aoc2018/pkg/io"
	"github.com/matzehuels/aoc2018/pkg/render"
)

const (
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatJSON = "json"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	input  string // puzzle input file, "-" for stdin
	format string // "dot", "svg" or "json"
	output string // output path, stdout when empty
	reduce bool   // drop edges implied by other edges
}

// graphCommand creates the graph command, which draws the day 7 step graph.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Render the day 7 step graph",
		Long: `Render the day 7 step graph as Graphviz DOT, SVG or JSON.

Nodes are numbered in the order the configured strategy schedules them.
Steps that can never be scheduled because of a cycle are drawn dashed.`,
		Example: `  aoc graph --input inputs/day07.txt --format svg -o steps.svg
  aoc graph --input inputs/day07.txt | dot -Tpng > steps.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", `day 7 puzzle input ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatDOT, "output format: dot, svg, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.reduce, "reduce", false, "omit edges implied by other edges")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, opts graphOpts, stdin io.Reader, stdout io.Writer) error {
	switch opts.format {
	case formatDOT, formatSVG, formatJSON:
	default:
		return errors.New(errors.ErrCodeUnsupported, "unknown format %q (available: dot, svg, json)", opts.format)
	}

	puzzleOpts, err := c.options()
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	lines, err := readInput(stdin, c.inputSource(day07.Puzzle, opts.input))
	if err != nil {
		return err
	}
	g, err := day07.Parse(lines)
	if err != nil {
		return err
	}
	if opts.reduce {
		reduced, err := g.Reduce()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "reduce step graph")
		}
		logger.Debug("Reduced step graph", "edges", g.EdgeCount(), "kept", reduced.EdgeCount())
		g = reduced
	}

	order, err := g.Schedule(dag.WithStrategy(puzzleOpts.Strategy))
	if err != nil && !stderrors.Is(err, dag.ErrIncompleteSchedule) {
		return err
	}
	if err != nil {
		logger.Warn("Step graph has a cycle", "scheduled", len(order), "steps", g.NodeCount())
	}

	if opts.format == formatJSON && opts.output != "" {
		if err := pkgio.ExportJSON(g, opts.output); err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Exported %d steps", g.NodeCount()))
		printFile(stdout, opts.output)
		return nil
	}

	data, err := encodeGraph(ctx, g, order, opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %d steps", g.NodeCount()))
	printFile(stdout, opts.output)
	return nil
}

func encodeGraph(ctx context.Context, g *dag.Graph, order []string, format string) ([]byte, error) {
	switch format {
	case formatJSON:
		var buf bytes.Buffer
		if err := pkgio.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatSVG:
		spinner := newSpinner(ctx, os.Stderr, "Rendering SVG...")
		spinner.Start()
		svg, err := render.SVG(ctx, render.ToDOT(g, render.Options{Order: order}))
		if err != nil {
			spinner.StopWithError("SVG rendering failed")
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		spinner.Stop()
		return svg, nil
	default:
		return []byte(render.ToDOT(g, render.Options{Order: order})), nil
	}
}
