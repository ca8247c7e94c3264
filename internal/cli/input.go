package cli

import (
	"io"
	"path/filepath"

	pkgio "github.com/matzehuels/aoc2018/pkg/io"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// inputSource resolves where a puzzle's input comes from: an explicit path,
// "-" for stdin, the configured input directory, or stdin as a fallback.
func (c *CLI) inputSource(p *puzzle.Puzzle, path string) string {
	if path != "" {
		return path
	}
	if c.Config.InputDir != "" {
		return filepath.Join(c.Config.InputDir, p.Name()+".txt")
	}
	return stdinPath
}

// readInput loads the lines of src, reading stdin when src is "-".
func readInput(stdin io.Reader, src string) ([]string, error) {
	if src == stdinPath {
		return pkgio.ReadLines(stdin)
	}
	return pkgio.ImportLines(src)
}
