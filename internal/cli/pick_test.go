package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/aoc2018/pkg/days"
)

func press(m DayListModel, keys ...tea.KeyMsg) (DayListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(DayListModel)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDayListNavigation(t *testing.T) {
	m := NewDayListModel(days.All)
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	m, _ = press(m, down, down)
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", m.Cursor)
	}

	m, _ = press(m, up, up, up)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 (clamped)", m.Cursor)
	}

	for range len(days.All) + 3 {
		m, _ = press(m, runes("j"))
	}
	if m.Cursor != len(days.All)-1 {
		t.Errorf("Cursor = %d, want %d (clamped)", m.Cursor, len(days.All)-1)
	}
}

func TestDayListJumpAndSelect(t *testing.T) {
	m := NewDayListModel(days.All)

	m, _ = press(m, runes("7"))
	if got := m.Days[m.Cursor].Day; got != 7 {
		t.Fatalf("jump to 7 landed on day %d", got)
	}

	// A digit that matches nothing starts over.
	m, _ = press(m, runes("0"), runes("5"))
	if got := m.Days[m.Cursor].Day; got != 5 {
		t.Fatalf("jump to 05 landed on day %d", got)
	}

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected == nil || m.Selected.Day != 5 {
		t.Errorf("Selected = %v, want day 5", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestDayListQuitWithoutSelection(t *testing.T) {
	m, cmd := press(NewDayListModel(days.All), runes("q"))
	if m.Selected != nil {
		t.Errorf("Selected = %v, want nil", m.Selected)
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestDayListScrolls(t *testing.T) {
	m := NewDayListModel(days.All)
	m.Height = 2

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.Offset != 2 {
		t.Errorf("Offset = %d, want 2", m.Offset)
	}

	view := m.View()
	if strings.Contains(view, days.All[0].Title) {
		t.Errorf("View() should scroll past the first day:\n%s", view)
	}
	if !strings.Contains(view, "▸ Day  4") {
		t.Errorf("View() should mark the cursor row:\n%s", view)
	}
}
