package listusers

import (
	"context"
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

// Command reports plan membership, grouped by payment plan
type Command struct {
	// Arguments
	PlanNames []string

	// Clients (can be mocked in tests)
	Service  plan.Service
	Geometry ui.GeometryDetector
	Log      *slog.Logger
	Out      io.Writer
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list-paying-users [<payment-plan>...]",
		Short: "List users grouped by payment plan",
		Long: `List the users on each payment plan.

With plan names as arguments, only those plans are listed. On an
interactive terminal the report is a boxed member table per plan, sized
to the terminal width; when piped or redirected it degrades to one
"plan<TAB>user" line per membership for easy processing.

Example:
  payplan list-paying-users
  payplan list-paying-users gold silver
  payplan list-paying-users | cut -f2`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cobraCmd *cobra.Command, args []string) error {
			var err error
			c.Service, c.Log, err = common.InitService(cobraCmd.Flags())
			c.Geometry = ui.NewTerminalGeometry(os.Stdout)
			c.Out = os.Stdout
			return err
		},
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			defer c.Service.Close()
			c.PlanNames = args
			return c.Run(cobraCmd.Context())
		},
	}

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	plans, err := c.Service.ListPlans(ctx, c.PlanNames)
	if err != nil {
		return fmt.Errorf("failed to list payment plans: %w", err)
	}

	if len(plans) == 0 {
		fmt.Fprintln(c.Out, "There are no payment plans defined.  To define one, run:")
		fmt.Fprintln(c.Out, "\t"+suggestCreateCommand(os.Args))
		return nil
	}

	groups := make([]ui.Group, 0, len(plans))
	for _, p := range plans {
		groups = append(groups, ui.Group{Title: p.Name, Members: p.MemberNames()})
	}

	geo := c.Geometry.Detect()
	c.Log.Debug("rendering plan report",
		"plans", len(plans), "interactive", geo.Interactive, "width", geo.Width)

	report, err := ui.RenderReport(groups, geo)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(c.Out, report)
	return nil
}

// suggestCreateCommand rebuilds the invocation as a create-payment-plan
// command the operator can run next.
func suggestCreateCommand(args []string) string {
	return strings.Replace(strings.Join(args, " "),
		"list-paying-users", "create-payment-plan <payment-plan>", 1)
}
