package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pick/internal/config"
)

func initialModel(cfg *config.Config, lines []string) *Model {
	m := &Model{
		cfg:      cfg,
		lines:    lines,
		mode:     cfg.Mode,
		styles:   NewStyles(cfg.Theme == config.ThemeDark),
		keymap:   DefaultKeyMap(),
		search:   textinput.New(),
		lastMode: -1,
	}
	m.search.Prompt = ""
	m.search.CharLimit = 256
	m.search.Focus()
	m.refreshFiltered()
	return m
}

// Run drives one interactive session and returns the selected line, if any.
// The session talks to the controlling terminal directly: the process's
// stdin was already drained for the snapshot and stdout stays clean for the
// result. The alternate screen, raw mode and cursor state are restored on
// every exit path before Run returns.
func Run(ctx context.Context, cfg *config.Config, lines []string) (string, bool, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return "", false, fmt.Errorf("open controlling terminal: %w", err)
	}
	defer tty.Close()

	m := initialModel(cfg, lines)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(tty),
		tea.WithOutput(tty),
		tea.WithAltScreen(),
	)
	res, err := p.Run()
	if err != nil {
		return "", false, err
	}
	final, ok := res.(*Model)
	if !ok {
		return "", false, nil
	}
	return final.choice, final.chosen, nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}
