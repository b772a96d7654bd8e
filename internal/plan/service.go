// Package plan defines the payment plan service boundary: the operations
// the command layer needs to manage plans and their membership, plus the
// SQLite-backed implementation.
package plan

import (
	"context"
	"errors"

	"github.com/datahubtools/payplan/internal/model"
)

// Validation and lookup failures. Commands match these with errors.Is to
// produce friendly diagnostics.
var (
	ErrNameRequired = errors.New("name is required")
	ErrPlanExists   = errors.New("payment plan already exists")
	ErrPlanNotFound = errors.New("payment plan not found")
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// Service manages payment plans and their membership.
type Service interface {
	// CreatePlan creates a new, empty payment plan with the given name.
	CreatePlan(ctx context.Context, name string) (*model.Plan, error)

	// CreateUser creates a new user with no payment plan.
	CreateUser(ctx context.Context, name string) (*model.User, error)

	// ListPlans returns plans with their members ordered by user name.
	// With no names it returns every plan; otherwise only the named
	// plans, silently skipping names that match nothing.
	ListPlans(ctx context.Context, names []string) ([]*model.Plan, error)

	// SetUserPlan moves a user onto the named plan, or off any plan when
	// planName is empty, and reports the transition.
	SetUserPlan(ctx context.Context, userName, planName string) (*model.Assignment, error)

	Close() error
}
