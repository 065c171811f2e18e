package dashboard

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"adminboard/pkg/sdk"
)

// searchCmd is an interactive search session: each typed line updates
// the query, and fetches are debounced so a burst of refinements costs
// one request for the final text.
func (a *App) searchCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Interactively search users",
		Long: "Type search text and press enter to refine; fetches are debounced.\n" +
			"An empty line repeats the current search, 'q' quits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd.Context(), status)
		},
	}

	cmd.Flags().StringVar(&status, "status", sdk.StatusAll, "status filter: all, active or inactive")
	return cmd
}

func (a *App) runSearch(ctx context.Context, status string) error {
	state := sdk.DefaultState().WithStatus(status)

	// Rendering is serialized: the debounced fetch runs on a timer
	// goroutine while the prompt loop keeps reading stdin.
	var mu sync.Mutex
	render := func(query string) {
		st := state.WithQuery(query)
		page, err := a.client.ListUsers(ctx, st.ListParams())

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			renderErrorPanelTo(a.errOut, err)
			return
		}
		fmt.Fprintf(a.out, "\nResults for %q:\n", query)
		a.renderPage(a.out, st, page)
	}

	debouncer := sdk.NewDebouncer(a.cfg.Client.DebounceInterval, render)
	defer debouncer.Stop()

	fmt.Fprintln(a.out, "Search users (q to quit):")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			break
		}
		debouncer.Input(line)
	}

	debouncer.Flush()
	return scanner.Err()
}
