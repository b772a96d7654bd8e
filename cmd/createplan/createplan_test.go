package createplan

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/datahubtools/payplan/internal/model"
	"github.com/datahubtools/payplan/internal/plan"
)

func TestCreatePaymentPlan(t *testing.T) {
	testCases := []struct {
		desc        string
		planName    string
		setup       func(svc *plan.MockService)
		expectError error
	}{
		{
			desc:     "creates a plan",
			planName: "gold",
			setup: func(svc *plan.MockService) {
				svc.On("CreatePlan", mock.Anything, "gold").
					Return(&model.Plan{ID: "1111111111111111", Name: "gold"}, nil)
			},
		},
		{
			desc:     "duplicate plan returns error",
			planName: "gold",
			setup: func(svc *plan.MockService) {
				svc.On("CreatePlan", mock.Anything, "gold").
					Return(nil, fmt.Errorf("payment plan %q: %w", "gold", plan.ErrPlanExists))
			},
			expectError: fmt.Errorf("already exists"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			svc := &plan.MockService{}
			tc.setup(svc)

			c := &Command{
				PlanName: tc.planName,
				Service:  svc,
			}

			err := c.Run(context.Background())
			if tc.expectError != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.expectError.Error())
			} else {
				require.NoError(t, err)
			}
			svc.AssertExpectations(t)
		})
	}
}
