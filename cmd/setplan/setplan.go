package setplan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datahubtools/payplan/internal/common"
	"github.com/datahubtools/payplan/internal/plan"
	"github.com/datahubtools/payplan/internal/ui"
)

// Command assigns a user to a payment plan
type Command struct {
	// Arguments
	UserName string
	PlanName string

	// Clients (can be mocked in tests)
	Service  plan.Service
	Geometry ui.GeometryDetector
	Log      *slog.Logger
	Out      io.Writer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set-payment-plan <user> [<payment-plan>]",
		Short: "Add an existing user to an existing payment plan",
		Long: `Add an existing user to an existing payment plan.

With no plan argument on an interactive terminal, the plan is picked
from a fuzzy finder over the existing plans.

Example:
  payplan set-payment-plan alice gold
  payplan set-payment-plan alice`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Service, c.Log, err = common.InitService(cobraCmd.Flags())
			c.Geometry = ui.NewTerminalGeometry(os.Stdout)
			c.Out = os.Stdout
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			defer c.Service.Close()
			c.UserName = args[0]
			if len(args) == 2 {
				c.PlanName = args[1]
			}
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	if c.PlanName == "" {
		name, err := c.pickPlan(ctx)
		if err != nil {
			return err
		}
		c.PlanName = name
	}

	a, err := c.Service.SetUserPlan(ctx, c.UserName, c.PlanName)
	if err != nil {
		switch {
		case errors.Is(err, plan.ErrUserNotFound):
			return fmt.Errorf("user %q not found: create it with 'payplan create-user'", c.UserName)
		case errors.Is(err, plan.ErrPlanNotFound):
			return c.planNotFound(ctx)
		}
		return fmt.Errorf("failed to set payment plan: %w", err)
	}

	fmt.Fprintf(c.Out, "%s's payment plan set from %s to %s\n",
		a.User.Name, a.OldName(), a.NewName())
	return nil
}

// pickPlan resolves the omitted plan argument through the fuzzy finder.
func (c *Command) pickPlan(ctx context.Context) (string, error) {
	if !c.Geometry.Detect().Interactive {
		return "", fmt.Errorf("missing <payment-plan> argument: required when not attached to a terminal")
	}

	plans, err := c.Service.ListPlans(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to list payment plans: %w", err)
	}
	if len(plans) == 0 {
		return "", fmt.Errorf("no payment plans defined: create one with 'payplan create-payment-plan'")
	}

	selected, err := ui.SelectPlan(plans)
	if err != nil {
		return "", fmt.Errorf("plan selection failed: %w", err)
	}
	if selected == nil {
		return "", fmt.Errorf("no payment plan selected")
	}
	return selected.Name, nil
}

// planNotFound turns an unknown plan name into a diagnostic, with near
// matches from the existing plans when there are any.
func (c *Command) planNotFound(ctx context.Context) error {
	plans, err := c.Service.ListPlans(ctx, nil)
	if err == nil {
		names := make([]string, 0, len(plans))
		for _, p := range plans {
			names = append(names, p.Name)
		}
		if suggestions := ui.SuggestNames(c.PlanName, names, 3); len(suggestions) > 0 {
			return fmt.Errorf("payment plan %q not found: did you mean %s?",
				c.PlanName, strings.Join(suggestions, ", "))
		}
	}
	return fmt.Errorf("payment plan %q not found: create it with 'payplan create-payment-plan'", c.PlanName)
}
