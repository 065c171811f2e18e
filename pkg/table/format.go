package table

import (
	"strings"
	"time"
)

// DefaultDateLayout is used when a date column gives no layout.
const DefaultDateLayout = "Jan 2, 2006"

// formatTokens maps layout tokens to Go reference-time fragments.
// Longer tokens are replaced first so "MM" never eats half of "MMM".
var formatTokens = []struct {
	token string
	gofmt string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
}

// FormatDate formats a timestamp using a token layout (e.g.
// "YYYY-MM-DD HH:mm"). An empty layout falls back to DefaultDateLayout.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		return t.Format(DefaultDateLayout)
	}

	replaced := layout
	for _, tok := range formatTokens {
		replaced = strings.ReplaceAll(replaced, tok.token, tok.gofmt)
	}
	return t.Format(replaced)
}
