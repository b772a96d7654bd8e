package setplan

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/datahubtools/payplan/internal/model"
	"github.com/datahubtools/payplan/internal/plan"
	"github.com/datahubtools/payplan/internal/ui"
)

func TestSetPaymentPlan(t *testing.T) {
	gold := &model.Plan{ID: "1111111111111111", Name: "gold"}
	silver := &model.Plan{ID: "2222222222222222", Name: "silver"}
	bob := &model.User{ID: "3333333333333333", Name: "bob"}

	testCases := []struct {
		desc        string
		userName    string
		planName    string
		geometry    ui.Geometry
		setup       func(svc *plan.MockService)
		want        string
		expectError error
	}{
		{
			desc:     "assigns a user with no previous plan",
			userName: "bob",
			planName: "gold",
			setup: func(svc *plan.MockService) {
				svc.On("SetUserPlan", mock.Anything, "bob", "gold").
					Return(&model.Assignment{User: bob, New: gold}, nil)
			},
			want: "bob's payment plan set from none to gold\n",
		},
		{
			desc:     "reports plan to plan transitions",
			userName: "bob",
			planName: "silver",
			setup: func(svc *plan.MockService) {
				svc.On("SetUserPlan", mock.Anything, "bob", "silver").
					Return(&model.Assignment{User: bob, Old: gold, New: silver}, nil)
			},
			want: "bob's payment plan set from gold to silver\n",
		},
		{
			desc:     "unknown user returns error",
			userName: "nobody",
			planName: "gold",
			setup: func(svc *plan.MockService) {
				svc.On("SetUserPlan", mock.Anything, "nobody", "gold").
					Return(nil, fmt.Errorf("user %q: %w", "nobody", plan.ErrUserNotFound))
			},
			expectError: fmt.Errorf("user \"nobody\" not found"),
		},
		{
			desc:     "unknown plan suggests near matches",
			userName: "bob",
			planName: "gol",
			setup: func(svc *plan.MockService) {
				svc.On("SetUserPlan", mock.Anything, "bob", "gol").
					Return(nil, fmt.Errorf("payment plan %q: %w", "gol", plan.ErrPlanNotFound))
				svc.On("ListPlans", mock.Anything, []string(nil)).
					Return([]*model.Plan{gold, silver}, nil)
			},
			expectError: fmt.Errorf("did you mean gold"),
		},
		{
			desc:        "missing plan argument without a terminal returns error",
			userName:    "bob",
			geometry:    ui.Geometry{},
			setup:       func(svc *plan.MockService) {},
			expectError: fmt.Errorf("missing <payment-plan> argument"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			svc := &plan.MockService{}
			tc.setup(svc)

			var out bytes.Buffer
			c := &Command{
				UserName: tc.userName,
				PlanName: tc.planName,
				Service:  svc,
				Geometry: ui.StaticGeometry{Geometry: tc.geometry},
				Out:      &out,
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
