package ui

import (
	"encoding/base64"
	"fmt"
	"os"
	"regexp"
	"strings"
)

const headerText = "Navigate with ↑ and ↓, enter prints the selected line"

func (m *Model) View() string {
	w, h := m.termWidth, m.termHeight
	if w <= 0 || h <= 0 {
		return ""
	}
	rows := make([]string, 0, h)
	rows = append(rows, m.styles.Frame.Render(fit(headerText, w)))

	body := m.bodyHeight()
	lower := m.focus
	if m.focus+body > len(m.filtered) {
		lower = len(m.filtered) - body
		if lower < 0 {
			lower = 0
		}
	}
	for i := lower; i < lower+body; i++ {
		if i >= len(m.filtered) {
			rows = append(rows, fit("", w))
			continue
		}
		cell := fit(m.filtered[i], w)
		if i == m.focus {
			cell = m.styles.Highlight.Render(cell)
		}
		rows = append(rows, cell)
	}

	if h >= 2 {
		rows = append(rows, m.styles.Frame.Render(fit(m.footerText(), w)))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) footerText() string {
	term := m.search.Value()
	var s string
	if term == "" {
		s = "Start typing to search, ctrl+t switches the filter mode"
	} else {
		s = fmt.Sprintf("(%s) Searching for: %s", m.mode, term)
	}
	if m.lastMsg != "" {
		s += "  [" + m.lastMsg + "]"
	}
	return s
}

// fit truncates s to w runes and pads it to exactly w columns, so leftovers
// from a previous, wider frame can never stay visible.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) > w {
		r = r[:w]
	}
	return string(r) + strings.Repeat(" ", w-len(r))
}

// copyToClipboard tries to copy text using OSC52 (works in many terminals).
func copyToClipboard(s string) {
	enc := base64.StdEncoding.EncodeToString([]byte(stripANSI(s)))
	payload := fmt.Sprintf("\x1b]52;c;%s\x07", enc)
	if f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
		defer f.Close()
		_, _ = f.WriteString(payload)
		return
	}
	fmt.Fprint(os.Stdout, payload)
}

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
