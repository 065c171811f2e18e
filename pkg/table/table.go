package table

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"
)

// CellType selects how a cell value is rendered. Unknown types fall
// back to plain stringification so new columns degrade gracefully.
type CellType string

const (
	TypeText    CellType = "text"
	TypeBadge   CellType = "badge"
	TypeDate    CellType = "date"
	TypeTagList CellType = "taglist"
)

// Column describes one table column. Rendering is driven entirely by
// this metadata: adding a column never requires touching the renderer.
type Column struct {
	Key        string
	Header     string
	Type       CellType
	Width      int
	Sortable   bool
	Pinned     bool
	DateLayout string
}

// Row maps column keys to cell values.
type Row map[string]any

// badgeStyles colors known badge values; anything else renders plain.
var badgeStyles = map[string]*color.Color{
	"active":   color.New(color.FgGreen),
	"inactive": color.New(color.FgHiBlack),
}

// Table renders rows against a fixed column set.
type Table struct {
	columns []Column
	empty   string
}

// New creates a Table. Hidden columns are the caller's concern: pass
// only the columns to show.
func New(columns []Column) *Table {
	return &Table{
		columns: columns,
		empty:   "No results match the current filters.",
	}
}

// WithEmptyMessage overrides the message shown when there are no rows.
func (t *Table) WithEmptyMessage(msg string) *Table {
	t.empty = msg
	return t
}

// Columns returns the column set in render order.
func (t *Table) Columns() []Column {
	return t.columns
}

// Render returns the table as aligned text, or the empty-state message
// when there are no rows.
func (t *Table) Render(rows []Row) string {
	if len(rows) == 0 {
		return t.empty + "\n"
	}

	// Plain text drives the widths; color codes are applied afterwards
	// so escape sequences don't skew the alignment.
	plain := make([][]string, len(rows))
	colored := make([][]string, len(rows))
	for i, row := range rows {
		plain[i] = make([]string, len(t.columns))
		colored[i] = make([]string, len(t.columns))
		for j, col := range t.columns {
			text, painted := renderCell(col, row[col.Key])
			plain[i][j] = text
			colored[i][j] = painted
		}
	}

	widths := make([]int, len(t.columns))
	for j, col := range t.columns {
		widths[j] = utf8.RuneCountInString(col.Header)
		if col.Width > widths[j] {
			widths[j] = col.Width
		}
		for i := range plain {
			if n := utf8.RuneCountInString(plain[i][j]); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var b strings.Builder
	for j, col := range t.columns {
		if j > 0 {
			b.WriteString("  ")
		}
		pad(&b, col.Header, col.Header, widths[j])
	}
	b.WriteByte('\n')
	for j := range t.columns {
		if j > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("-", widths[j]))
	}
	b.WriteByte('\n')

	for i := range rows {
		for j := range t.columns {
			if j > 0 {
				b.WriteString("  ")
			}
			pad(&b, colored[i][j], plain[i][j], widths[j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// pad writes text left-aligned to width, measuring by the plain form.
func pad(b *strings.Builder, text, plain string, width int) {
	b.WriteString(text)
	if n := utf8.RuneCountInString(plain); n < width {
		b.WriteString(strings.Repeat(" ", width-n))
	}
}

// renderCell formats one value per the column type, returning the plain
// text and the possibly colorized form.
func renderCell(col Column, value any) (string, string) {
	switch col.Type {
	case TypeBadge:
		text := stringify(value)
		if style, ok := badgeStyles[strings.ToLower(text)]; ok {
			return text, style.Sprint(text)
		}
		return text, text

	case TypeDate:
		switch v := value.(type) {
		case time.Time:
			text := FormatDate(v, col.DateLayout)
			return text, text
		case string:
			if ts, err := time.Parse(time.RFC3339, v); err == nil {
				text := FormatDate(ts, col.DateLayout)
				return text, text
			}
			return v, v
		default:
			text := stringify(value)
			return text, text
		}

	case TypeTagList:
		text := joinTags(value)
		return text, text

	default:
		text := stringify(value)
		return text, text
	}
}

// joinTags renders a list value as comma-separated tags.
func joinTags(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return stringify(value)
	}
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", value)
}
