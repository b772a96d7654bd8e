package createplan

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

// Command creates a new payment plan
type Command struct {
	// Arguments
	PlanName string

	// Clients (can be mocked in tests)
	Service plan.Service
	Log     *slog.Logger
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "create-payment-plan <payment-plan>",
		Short: "Create a new payment plan",
		Long: `Create a new payment plan of the given name.

The plan starts with no users; add them with 'payplan set-payment-plan'.

Example:
  payplan create-payment-plan gold`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Service, c.Log, err = common.InitService(cobraCmd.Flags())
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			defer c.Service.Close()
			c.PlanName = args[0]
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	p, err := c.Service.CreatePlan(ctx, c.PlanName)
	if err != nil {
		if errors.Is(err, plan.ErrPlanExists) {
			return fmt.Errorf("payment plan %q already exists", c.PlanName)
		}
		return fmt.Errorf("failed to create payment plan: %w", err)
	}

	ui.Successf("Created payment plan: %s (%s)", p.Name, p.ID)
	return nil
}
