package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/aoc2018/pkg/days"
	"github.com/matzehuels/aoc2018/pkg/errors"
	"github.com/matzehuels/aoc2018/pkg/puzzle"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickCommand creates the pick command: choose a day interactively, then
// solve it.
func (c *CLI) pickCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a day interactively and solve it",
		Long: `Choose a day from an interactive list and solve it.

The terminal is taken by the picker, so input must come from --input or the
configured input_dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" && c.Config.InputDir == "" {
				return errors.New(errors.ErrCodeInvalidInput, "pick needs --input or input_dir in the config file")
			}
			if input == stdinPath {
				return errors.New(errors.ErrCodeInvalidInput, "pick cannot read input from stdin")
			}

			prog := tea.NewProgram(NewDayListModel(days.All),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.ErrOrStderr()))
			final, err := prog.Run()
			if err != nil {
				return fmt.Errorf("picker: %w", err)
			}

			m := final.(DayListModel)
			if m.Selected == nil {
				return nil
			}
			return c.solve(cmd.Context(), m.Selected, input, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "puzzle input file")

	return cmd
}

// =============================================================================
// DayListModel - Interactive day selection
// =============================================================================

// DayListModel is the bubbletea model for interactive day selection.
// Typing digits jumps to that day.
type DayListModel struct {
	Days     []*puzzle.Puzzle
	Cursor   int
	Selected *puzzle.Puzzle
	Height   int
	Offset   int

	typed string
}

// NewDayListModel creates a new day list model.
func NewDayListModel(all []*puzzle.Puzzle) DayListModel {
	return DayListModel{
		Days:   all,
		Height: 15,
	}
}

func (m DayListModel) Init() tea.Cmd {
	return nil
}

func (m DayListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.typed = ""
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			m.typed = ""
			if m.Cursor < len(m.Days)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Days) == 0 {
				return m, tea.Quit
			}
			m.Selected = m.Days[m.Cursor]
			return m, tea.Quit
		default:
			if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
				m.jump(key)
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	m.scroll()
	return m, nil
}

// jump moves the cursor to the day matching the digits typed so far. A
// digit that matches nothing starts a new number.
func (m *DayListModel) jump(digit string) {
	for _, typed := range []string{m.typed + digit, digit} {
		day, err := strconv.Atoi(typed)
		if err != nil {
			continue
		}
		for i, p := range m.Days {
			if p.Day == day {
				m.Cursor = i
				m.typed = typed
				return
			}
		}
	}
	m.typed = ""
}

// scroll keeps the cursor inside the visible window.
func (m *DayListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m DayListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Advent of Code 2018"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  0-9 jump  ⏎ solve  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Days))
	for i := m.Offset; i < end; i++ {
		p := m.Days[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%sDay %2d  %s", cursor, p.Day, p.Title)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Days))))

	return b.String()
}
