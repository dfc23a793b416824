package filter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Knetic/govaluate"
)

// Mode selects the matching strategy. The zero value is fuzzy.
type Mode int

const (
	ModeFuzzy Mode = iota
	ModeRegex
	ModeExpr

	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeFuzzy:
		return "fuzzy"
	case ModeRegex:
		return "regex"
	case ModeExpr:
		return "expr"
	}
	return "unknown"
}

// Next advances the mode in its fixed cycle: fuzzy, regex, expr.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fuzzy":
		return ModeFuzzy, nil
	case "regex":
		return ModeRegex, nil
	case "expr":
		return ModeExpr, nil
	}
	return ModeFuzzy, fmt.Errorf("unknown filter mode %q", s)
}

// Evaluator is a compiled (mode, term) pair. It is a pure matcher: the same
// evaluator applied to the same lines always yields the same view.
type Evaluator struct {
	mode Mode
	term string
	re   *regexp.Regexp
	expr *govaluate.EvaluableExpression
}

func NewEvaluator(mode Mode, term string) (*Evaluator, error) {
	e := &Evaluator{mode: mode, term: term}
	if term == "" {
		return e, nil
	}
	var err error
	switch mode {
	case ModeFuzzy:
		// Subsequence match: every term character in order, anything between.
		parts := make([]string, 0, len(term))
		for _, r := range term {
			parts = append(parts, regexp.QuoteMeta(string(r)))
		}
		e.re, err = regexp.Compile("(?i)" + strings.Join(parts, ".*"))
	case ModeRegex:
		e.re, err = regexp.Compile("(?i)" + term)
	case ModeExpr:
		e.expr, err = govaluate.NewEvaluableExpression(term)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Match reports whether a line belongs to the filtered view. idx is the
// line's position in the full, unfiltered list.
func (e *Evaluator) Match(line string, idx int) bool {
	if e.term == "" {
		return true
	}
	if e.re != nil {
		return e.re.MatchString(line)
	}
	if e.expr != nil {
		// govaluate does arithmetic in float64.
		params := map[string]any{
			"line":   line,
			"lower":  strings.ToLower(line),
			"length": float64(utf8.RuneCountInString(line)),
			"index":  float64(idx),
		}
		result, err := e.expr.Evaluate(params)
		if err != nil {
			return false
		}
		b, ok := result.(bool)
		return ok && b
	}
	return true
}

// Filter returns the matching subsequence of lines in their original order.
func (e *Evaluator) Filter(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if e.Match(line, i) {
			out = append(out, line)
		}
	}
	return out
}
