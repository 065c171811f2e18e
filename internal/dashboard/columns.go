package dashboard

import (
	"fmt"
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/spf13/cobra"

	"adminboard/pkg/prefs"
	"adminboard/pkg/table"
)

// columnsCmd manages the persisted table preferences: visible columns
// and sort order. Preferences survive restarts via the local store.
func (a *App) columnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Show or change table column preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.showColumns()
		},
	}

	cmd.AddCommand(a.columnsSetCmd(), a.columnsSortCmd(), a.columnsResetCmd())
	return cmd
}

func (a *App) showColumns() error {
	visible := make(map[string]bool)
	for _, col := range a.visibleColumns() {
		visible[col.Key] = true
	}

	fmt.Fprintln(a.out, "Columns:")
	for _, col := range columnCatalog {
		mark := " "
		if visible[col.Key] {
			mark = "x"
		}
		notes := []string{}
		if col.Pinned {
			notes = append(notes, "pinned")
		}
		if col.Sortable {
			notes = append(notes, "sortable")
		}
		suffix := ""
		if len(notes) > 0 {
			suffix = " (" + strings.Join(notes, ", ") + ")"
		}
		fmt.Fprintf(a.out, "  [%s] %-14s %s%s\n", mark, col.Key, col.Header, suffix)
	}

	if spec, ok := a.storedSort(); ok {
		dir := "ascending"
		if spec.Descending {
			dir = "descending"
		}
		fmt.Fprintf(a.out, "Sort: %s (%s)\n", spec.Key, dir)
	} else {
		fmt.Fprintln(a.out, "Sort: server order")
	}
	return nil
}

func (a *App) columnsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key>[,<key>...]",
		Short: "Set visible columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := strings.Split(args[0], ",")
			for i, k := range keys {
				keys[i] = strings.TrimSpace(k)
				if !knownColumn(keys[i]) {
					return errors.Errorf("unknown column %q", keys[i])
				}
			}
			if err := a.prefs.Set(prefs.KeyTableColumns, keys); err != nil {
				return err
			}
			return a.showColumns()
		},
	}
}

func (a *App) columnsSortCmd() *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "sort <key>",
		Short: "Sort the table by a column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !sortableColumn(key) {
				return errors.Errorf("column %q is not sortable", key)
			}
			spec := table.SortSpec{Key: key, Descending: desc}
			if err := a.prefs.Set(prefs.KeyTableSort, spec); err != nil {
				return err
			}
			return a.showColumns()
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func (a *App) columnsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset column and sort preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.prefs.Delete(prefs.KeyTableColumns); err != nil {
				return err
			}
			if err := a.prefs.Delete(prefs.KeyTableSort); err != nil {
				return err
			}
			return a.showColumns()
		},
	}
}

func knownColumn(key string) bool {
	for _, col := range columnCatalog {
		if col.Key == key {
			return true
		}
	}
	return false
}

func sortableColumn(key string) bool {
	for _, col := range columnCatalog {
		if col.Key == key {
			return col.Sortable
		}
	}
	return false
}
