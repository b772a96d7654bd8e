package listusers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/datahubtools/payplan/internal/model"
	"github.com/datahubtools/payplan/internal/plan"
	"github.com/datahubtools/payplan/internal/ui"
)

func goldPlan() *model.Plan {
	return &model.Plan{
		ID:   "1111111111111111",
		Name: "gold",
		Users: []*model.User{
			{Name: "al"},
			{Name: "bob"},
			{Name: "zoe"},
		},
	}
}

func TestListPayingUsers(t *testing.T) {
	divider := strings.Repeat("-", 40)
	centered := strings.Repeat(" ", 18) + "gold" + strings.Repeat(" ", 18)

	testCases := []struct {
		desc        string
		planNames   []string
		geometry    ui.Geometry
		setup       func(svc *plan.MockService)
		want        string
		expectError error
	}{
		{
			desc:     "piped output is one tab-separated line per membership",
			geometry: ui.Geometry{},
			setup: func(svc *plan.MockService) {
				svc.On("ListPlans", mock.Anything, []string(nil)).
					Return([]*model.Plan{goldPlan()}, nil)
			},
			want: "gold\tal\ngold\tbob\ngold\tzoe\n",
		},
		{
			desc:     "interactive output is boxed member columns",
			geometry: ui.Geometry{Interactive: true, Width: 40},
			setup: func(svc *plan.MockService) {
				svc.On("ListPlans", mock.Anything, []string(nil)).
					Return([]*model.Plan{goldPlan()}, nil)
			},
			want: strings.Join([]string{
				divider,
				centered,
				divider,
				"al         bob        zoe        ",
				"",
				"",
			}, "\n"),
		},
		{
			desc:      "plan name arguments filter the report",
			planNames: []string{"gold"},
			geometry:  ui.Geometry{},
			setup: func(svc *plan.MockService) {
				svc.On("ListPlans", mock.Anything, []string{"gold"}).
					Return([]*model.Plan{goldPlan()}, nil)
			},
			want: "gold\tal\ngold\tbob\ngold\tzoe\n",
		},
		{
			desc:     "service failure aborts the command",
			geometry: ui.Geometry{},
			setup: func(svc *plan.MockService) {
				svc.On("ListPlans", mock.Anything, []string(nil)).
					Return(nil, fmt.Errorf("disk on fire"))
			},
			expectError: fmt.Errorf("failed to list payment plans"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			svc := &plan.MockService{}
			tc.setup(svc)

			var out bytes.Buffer
			c := &Command{
				PlanNames: tc.planNames,
				Service:   svc,
				Geometry:  ui.StaticGeometry{Geometry: tc.geometry},
				Log:       slog.New(slog.DiscardHandler),
				Out:       &out,
			}

			err := c.Run(context.Background())
			if tc.expectError != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.expectError.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, out.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestListPayingUsersNoPlans(t *testing.T) {
	svc := &plan.MockService{}
	svc.On("ListPlans", mock.Anything, []string(nil)).
		Return([]*model.Plan{}, nil)

	var out bytes.Buffer
	c := &Command{
		Service:  svc,
		Geometry: ui.StaticGeometry{Geometry: ui.Geometry{Interactive: true, Width: 40}},
		Log:      slog.New(slog.DiscardHandler),
		Out:      &out,
	}

	require.NoError(t, c.Run(context.Background()))
	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "There are no payment plans defined.  To define one, run:", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "\t"))
	svc.AssertExpectations(t)
}

func TestSuggestCreateCommand(t *testing.T) {
	got := suggestCreateCommand([]string{"payplan", "list-paying-users", "gold"})
	assert.Equal(t, "payplan create-payment-plan <payment-plan> gold", got)
}
