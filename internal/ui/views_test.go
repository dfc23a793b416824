package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pick/internal/filter"
)

func viewRows(m *Model) []string {
	return strings.Split(m.View(), "\n")
}

func TestViewHasExactDimensions(t *testing.T) {
	m := newTestModel(t, filter.ModeFuzzy, []string{"apple", "banana", "grape"})
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 8})
	rows := viewRows(m)
	if len(rows) != 8 {
		t.Fatalf("rows = %d, want 8", len(rows))
	}
	for i, row := range rows {
		if w := lipgloss.Width(row); w != 20 {
			t.Fatalf("row %d width = %d, want 20", i, w)
		}
	}
}

func TestViewTruncatesWideLines(t *testing.T) {
	m := newTestModel(t, filter.ModeFuzzy, []string{strings.Repeat("x", 100)})
	m.Update(tea.WindowSizeMsg{Width: 12, Height: 5})
	for i, row := range viewRows(m) {
		if w := lipgloss.Width(row); w != 12 {
			t.Fatalf("row %d width = %d, want 12", i, w)
		}
	}
}

func TestViewBlankRowsPastEnd(t *testing.T) {
	m := newTestModel(t, filter.ModeFuzzy, []string{"only"})
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 6})
	rows := viewRows(m)
	// header, 4 body rows, footer
	for i := 2; i < 5; i++ {
		if strings.TrimSpace(stripANSI(rows[i])) != "" {
			t.Fatalf("row %d should be blank, got %q", i, rows[i])
		}
	}
}

func TestViewPinsScrollToTail(t *testing.T) {
	lines := []string{"l0", "l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8", "l9"}
	m := newTestModel(t, filter.ModeFuzzy, lines)
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	for i := 0; i < 9; i++ {
		m.Update(key(tea.KeyDown))
	}
	v := stripANSI(m.View())
	for _, want := range []string{"l7", "l8", "l9"} {
		if !strings.Contains(v, want) {
			t.Fatalf("view should show %s:\n%s", want, v)
		}
	}
	if strings.Contains(v, "l0") {
		t.Fatalf("view should have scrolled past l0:\n%s", v)
	}
}

func TestViewScrollFollowsFocus(t *testing.T) {
	lines := []string{"l0", "l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8", "l9"}
	m := newTestModel(t, filter.ModeFuzzy, lines)
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	for i := 0; i < 4; i++ {
		m.Update(key(tea.KeyDown))
	}
	v := stripANSI(m.View())
	if !strings.Contains(v, "l4") || strings.Contains(v, "l3") {
		t.Fatalf("focus row should be the top body row:\n%s", v)
	}
}

func TestFooterShowsModeAndTerm(t *testing.T) {
	m := newTestModel(t, filter.ModeFuzzy, []string{"apple"})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 6})
	v := stripANSI(m.View())
	if !strings.Contains(v, "Start typing to search") {
		t.Fatalf("idle footer missing:\n%s", v)
	}
	typeString(m, "ap")
	v = stripANSI(m.View())
	if !strings.Contains(v, "(fuzzy) Searching for: ap") {
		t.Fatalf("active footer missing:\n%s", v)
	}
}

func TestViewEmptyBeforeFirstResize(t *testing.T) {
	m := newTestModel(t, filter.ModeFuzzy, []string{"apple"})
	m.termWidth, m.termHeight = 0, 0
	if m.View() != "" {
		t.Fatalf("view should be empty without known dimensions")
	}
}

func TestFitTruncatesThenPads(t *testing.T) {
	if got := fit("hello", 3); got != "hel" {
		t.Fatalf("fit truncate = %q", got)
	}
	if got := fit("hi", 5); got != "hi   " {
		t.Fatalf("fit pad = %q", got)
	}
	if got := fit("héllo", 4); got != "héll" {
		t.Fatalf("fit rune truncate = %q", got)
	}
}
