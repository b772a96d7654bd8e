package createuser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/datahubtools/payplan/internal/common"
	"github.com/datahubtools/payplan/internal/plan"
	"github.com/datahubtools/payplan/internal/ui"
)

// Command creates a new user
type Command struct {
	// Arguments
	UserName string

	// Clients (can be mocked in tests)
	Service plan.Service
	Log     *slog.Logger
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "create-user <user>",
		Short: "Create a new user",
		Long: `Create a new user with no payment plan.

Assign the user to a plan with 'payplan set-payment-plan'.

Example:
  payplan create-user alice`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Service, c.Log, err = common.InitService(cobraCmd.Flags())
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
	u, err := c.Service.CreateUser(ctx, c.UserName)
	if err != nil {
		if errors.Is(err, plan.ErrUserExists) {
			return fmt.Errorf("user %q already exists", c.UserName)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	ui.Successf("Created user: %s (%s)", u.Name, u.ID)
	return nil
}
