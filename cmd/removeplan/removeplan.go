package removeplan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/datahubtools/payplan/internal/common"
	"github.com/datahubtools/payplan/internal/plan"
)

// Command removes a user from their payment plan
type Command struct {
	// Arguments
	UserName string

	// Clients (can be mocked in tests)
	Service plan.Service
	Log     *slog.Logger
	Out     io.Writer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remove-from-payment-plan <user>",
		Short: "Remove a user from their payment plan",
		Long: `Remove an existing user from whatever payment plan they belong to.

Removing a user who is not on any plan is not an error.

Example:
  payplan remove-from-payment-plan alice`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Service, c.Log, err = common.InitService(cobraCmd.Flags())
			c.Out = os.Stdout
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			defer c.Service.Close()
			c.UserName = args[0]
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	a, err := c.Service.SetUserPlan(ctx, c.UserName, "")
	if err != nil {
		if errors.Is(err, plan.ErrUserNotFound) {
			return fmt.Errorf("user %q not found", c.UserName)
		}
		return fmt.Errorf("failed to remove user from payment plan: %w", err)
	}

	fmt.Fprintf(c.Out, "%s removed from %s.\n", a.User.Name, a.OldName())
	return nil
}
