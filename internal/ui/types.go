package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"pick/internal/config"
	"pick/internal/filter"
)

type Model struct {
	cfg *config.Config

	// Data: the immutable snapshot and the view derived from it.
	lines    []string
	filtered []string

	// Filter state. eval is the last successfully compiled evaluator;
	// lastTerm/lastMode are the memo keys of the last computation.
	mode     filter.Mode
	eval     *filter.Evaluator
	lastTerm string
	lastMode filter.Mode

	// UI
	search     textinput.Model
	styles     Styles
	keymap     KeyMap
	focus      int
	termWidth  int
	termHeight int

	// status
	lastMsg string

	// Outcome
	choice string
	chosen bool
}

// bodyHeight is the number of list rows between header and footer.
func (m *Model) bodyHeight() int {
	h := m.termHeight - 2
	if h < 0 {
		h = 0
	}
	return h
}
