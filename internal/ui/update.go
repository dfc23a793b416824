package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pick/internal/filter"
	"pick/internal/util/logx"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		km := m.keymap
		switch {
		case keyMatches(msg, km.Up) || keyMatches(msg, km.UpAlias):
			if m.focus > 0 {
				m.focus--
			}
			return m, nil
		case keyMatches(msg, km.Down) || keyMatches(msg, km.DownAlias):
			if m.focus < len(m.filtered)-1 {
				m.focus++
			}
			return m, nil
		case keyMatches(msg, km.ScreenDown):
			page := m.bodyHeight()
			if page < 1 {
				page = 1
			}
			m.focus += page
			if m.focus >= len(m.filtered) {
				m.focus = len(m.filtered) - 1
			}
			if m.focus < 0 {
				m.focus = 0
			}
			return m, nil
		case keyMatches(msg, km.Select):
			if len(m.filtered) == 0 {
				return m, nil
			}
			m.choice = m.filtered[m.focus]
			m.chosen = true
			return m, tea.Quit
		case keyMatches(msg, km.Cancel) || keyMatches(msg, km.CancelAlias):
			m.chosen = false
			return m, tea.Quit
		case keyMatches(msg, km.ToggleMode):
			m.mode = m.mode.Next()
			m.refreshFiltered()
			return m, nil
		case keyMatches(msg, km.Copy):
			if len(m.filtered) > 0 {
				copyToClipboard(m.filtered[m.focus])
				m.lastMsg = "copied to clipboard"
			}
			return m, nil
		}
		// Everything else edits the search term.
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refreshFiltered()
		return m, cmd
	}
	return m, nil
}

// refreshFiltered recomputes the filtered view when the (term, mode) pair
// changed since the last computation and clamps the focus into range. A term
// that fails to compile keeps the previous evaluator, so the operator sees
// the last valid view until the next edit.
func (m *Model) refreshFiltered() {
	term := m.search.Value()
	if term == m.lastTerm && m.mode == m.lastMode {
		return
	}
	if ev, err := filter.NewEvaluator(m.mode, term); err == nil {
		m.eval = ev
		m.lastMsg = ""
	} else {
		m.lastMsg = "invalid " + m.mode.String() + " pattern"
		logx.Debugf("filter compile failed (%s): %v", m.mode, err)
	}
	m.lastTerm, m.lastMode = term, m.mode
	m.filtered = m.eval.Filter(m.lines)
	if m.focus >= len(m.filtered) {
		m.focus = len(m.filtered) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}
