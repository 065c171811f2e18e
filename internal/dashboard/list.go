package dashboard

import (
	"github.com/spf13/cobra"

	"adminboard/pkg/sdk"
)

// listCmd shows a page of users with filtering, pagination and a share
// link encoding the view.
func (a *App) listCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		status   string
		query    string
		link     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List users with pagination, status filter and free-text search.",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := a.resolveState(cmd, page, pageSize, status, query, link)
			if err != nil {
				return err
			}

			result, err := a.client.ListUsers(cmd.Context(), state.ListParams())
			if err != nil {
				return err
			}

			a.renderPage(a.out, state, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", sdk.DefaultPage, "page number (1-indexed)")
	cmd.Flags().IntVar(&pageSize, "page-size", sdk.DefaultPageSize, "users per page")
	cmd.Flags().StringVar(&status, "status", sdk.StatusAll, "status filter: all, active or inactive")
	cmd.Flags().StringVar(&query, "query", "", "free-text search on name and email")
	cmd.Flags().StringVar(&link, "link", "", "restore a view from a share link (overrides other flags)")

	return cmd
}

// resolveState builds the view state from flags, or from a share link
// when one is given. Flags set explicitly alongside --link still apply
// on top of the restored state.
func (a *App) resolveState(cmd *cobra.Command, page, pageSize int, status, query, link string) (sdk.State, error) {
	state := sdk.DefaultState()

	if link != "" {
		restored, err := sdk.ParseLink(link)
		if err != nil {
			return sdk.State{}, err
		}
		state = restored
	}

	if link == "" || cmd.Flags().Changed("status") {
		state = state.WithStatus(status)
	}
	if link == "" || cmd.Flags().Changed("query") {
		state = state.WithQuery(query)
	}
	if link == "" || cmd.Flags().Changed("page-size") {
		state = state.WithPageSize(pageSize)
	}
	// Page last: filter changes above reset it to 1 on purpose.
	if link == "" || cmd.Flags().Changed("page") {
		state = state.WithPage(page)
	}

	return state, nil
}
