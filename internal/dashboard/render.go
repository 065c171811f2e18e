package dashboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/friendsofgo/errors"

	"adminboard/pkg/prefs"
	"adminboard/pkg/sdk"
	"adminboard/pkg/table"
)

// columnCatalog is every column the user table can show, in default
// order. Visibility preferences select a subset; rendering stays
// metadata-driven.
var columnCatalog = []table.Column{
	{Key: "id", Header: "ID", Type: table.TypeText, Pinned: true},
	{Key: "display_name", Header: "Name", Type: table.TypeText, Sortable: true, Pinned: true},
	{Key: "email", Header: "Email", Type: table.TypeText, Sortable: true},
	{Key: "status", Header: "Status", Type: table.TypeBadge, Sortable: true},
	{Key: "created_at", Header: "Created", Type: table.TypeDate, Sortable: true, DateLayout: "YYYY-MM-DD"},
	{Key: "groups", Header: "Groups", Type: table.TypeTagList},
}

// visibleColumns applies the stored column preference to the catalog.
// Pinned columns always show; an unset or empty preference shows all.
func (a *App) visibleColumns() []table.Column {
	var keys []string
	if err := a.prefs.Get(prefs.KeyTableColumns, &keys); err != nil || len(keys) == 0 {
		return columnCatalog
	}

	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	cols := make([]table.Column, 0, len(columnCatalog))
	for _, col := range columnCatalog {
		if col.Pinned || wanted[col.Key] {
			cols = append(cols, col)
		}
	}
	return cols
}

// storedSort returns the persisted sort, if any. An unsortable key is
// ignored rather than failing the view.
func (a *App) storedSort() (table.SortSpec, bool) {
	var spec table.SortSpec
	if err := a.prefs.Get(prefs.KeyTableSort, &spec); err != nil {
		return table.SortSpec{}, false
	}
	for _, col := range columnCatalog {
		if col.Key == spec.Key && col.Sortable {
			return spec, true
		}
	}
	return table.SortSpec{}, false
}

// buildRows converts API users to table rows keyed by column.
func buildRows(users []sdk.User) []table.Row {
	rows := make([]table.Row, len(users))
	for i, u := range users {
		groups := make([]string, len(u.Groups))
		for j, g := range u.Groups {
			groups[j] = g.Name
		}
		rows[i] = table.Row{
			"id":           u.ID,
			"display_name": u.DisplayName,
			"email":        u.Email,
			"status":       u.Status,
			"created_at":   u.CreatedAt,
			"groups":       groups,
		}
	}
	return rows
}

// renderPage prints one listed page: table, pagination footer and a
// share link that reproduces the view.
func (a *App) renderPage(w io.Writer, state sdk.State, page sdk.UsersPage) {
	rows := buildRows(page.Items)
	if spec, ok := a.storedSort(); ok {
		table.SortRows(rows, spec)
	}

	tbl := table.New(a.visibleColumns()).
		WithEmptyMessage("No users match the current filters.")
	fmt.Fprint(w, tbl.Render(rows))

	p := page.Paginator
	fmt.Fprintf(w, "\nPage %d/%d (%d users total)", p.CurrentPage, p.TotalPages, p.Total)
	if p.HasPrev {
		fmt.Fprintf(w, "  [prev: --page %d]", p.CurrentPage-1)
	}
	if p.HasNext {
		fmt.Fprintf(w, "  [next: --page %d]", p.CurrentPage+1)
	}
	fmt.Fprintln(w)

	if encoded := state.Encode(); encoded != "" {
		fmt.Fprintf(w, "Share link: %s/users?%s\n", strings.TrimRight(a.cfg.Client.BaseURL, "/"), encoded)
	} else {
		fmt.Fprintf(w, "Share link: %s/users\n", strings.TrimRight(a.cfg.Client.BaseURL, "/"))
	}
}

// renderErrorPanel prints a categorized error panel: icon, title and a
// human description, with the underlying error underneath. Panels go to
// stderr so piped table output stays clean.
func (a *App) renderErrorPanel(err error) {
	renderErrorPanelTo(a.errOut, err)
}

func renderErrorPanelTo(w io.Writer, err error) {
	p := sdk.Present(sdk.Classify(err))

	title := color.New(color.Bold)
	fmt.Fprintf(w, "\n%s %s\n", p.Icon, title.Sprint(p.Title))
	fmt.Fprintf(w, "%s\n", p.Description)
	fmt.Fprintf(w, "(%v)\n", err)
}

// renderCrashPanel is the last-resort boundary for panics: the view is
// replaced with a panel instead of crashing with a stack trace.
func renderCrashPanel(w io.Writer, recovered any) {
	err, ok := recovered.(error)
	if !ok {
		err = errors.Errorf("%v", recovered)
	}

	red := color.New(color.FgRed, color.Bold)
	fmt.Fprintf(w, "\n%s\n", red.Sprint("The dashboard hit an unexpected error."))
	fmt.Fprintf(w, "Your data is safe. Re-run the command to try again.\n")
	fmt.Fprintf(w, "(%v)\n", err)
}
