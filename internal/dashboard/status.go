package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"adminboard/pkg/sdk"
)

// Confirmer asks the operator a yes/no question. Abstracted so tests
// can answer without a terminal.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// activateCmd sets a user's status to active.
func (a *App) activateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <user-id>",
		Short: "Activate a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.setStatus(cmd, args[0], sdk.StatusActive)
		},
	}
}

// deactivateCmd sets a user's status to inactive. Deactivation locks
// the user out, so it asks for confirmation unless --yes is given.
func (a *App) deactivateCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "deactivate <user-id>",
		Short: "Deactivate a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := a.ask.Confirm(fmt.Sprintf("Deactivate user %s? They will lose access", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(a.out, "Aborted.")
					return nil
				}
			}
			return a.setStatus(cmd, args[0], sdk.StatusInactive)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (a *App) setStatus(cmd *cobra.Command, id, status string) error {
	user, message, err := a.client.SetUserStatus(cmd.Context(), id, status)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	fmt.Fprintln(a.out, green.Sprint("✓"), message)
	fmt.Fprintf(a.out, "%s <%s> is now %s\n", user.DisplayName, user.Email, user.Status)
	return nil
}
