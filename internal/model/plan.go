package model

import "time"

// Plan is a named payment plan grouping the users who pay under it.
type Plan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Users     []*User   `json:"users,omitempty"`
}

// MemberNames returns the names of the plan's users in stored order.
func (p *Plan) MemberNames() []string {
	names := make([]string, 0, len(p.Users))
	for _, u := range p.Users {
		names = append(names, u.Name)
	}
	return names
}

// User is an account that belongs to at most one payment plan.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PlanID    string    `json:"plan_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Assignment records a payment plan transition for a user. Old or New is
// nil when the user had, or ends up with, no plan.
type Assignment struct {
	User *User
	Old  *Plan
	New  *Plan
}

// OldName returns the previous plan's name, or "none".
func (a *Assignment) OldName() string {
	return planName(a.Old)
}

// NewName returns the resulting plan's name, or "none".
func (a *Assignment) NewName() string {
	return planName(a.New)
}

func planName(p *Plan) string {
	if p == nil {
		return "none"
	}
	return p.Name
}
