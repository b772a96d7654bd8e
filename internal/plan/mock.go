package plan

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/datahubtools/payplan/internal/model"
)

// MockService is a testify mock of Service for command tests.
type MockService struct {
	mock.Mock
}

// CreatePlan implements Service.
func (m *MockService) CreatePlan(ctx context.Context, name string) (*model.Plan, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

// CreateUser implements Service.
func (m *MockService) CreateUser(ctx context.Context, name string) (*model.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// ListPlans implements Service.
func (m *MockService) ListPlans(ctx context.Context, names []string) ([]*model.Plan, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Plan), args.Error(1)
}

// SetUserPlan implements Service.
func (m *MockService) SetUserPlan(ctx context.Context, userName, planName string) (*model.Assignment, error) {
	args := m.Called(ctx, userName, planName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Assignment), args.Error(1)
}

// Close implements Service.
func (m *MockService) Close() error {
	args := m.Called()
	return args.Error(0)
}
