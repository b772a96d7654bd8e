package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/datahubtools/payplan/internal/model"
)

const schema = `
create table if not exists payment_plans(
	id text primary key,
	name text not null unique,
	created_at datetime not null
);
create table if not exists users(
	id text primary key,
	name text not null unique,
	payment_plan_id text references payment_plans(id),
	created_at datetime not null
);
`

// SQLiteService is the Service implementation backed by a SQLite
// database. A single file holds both plans and users; ":memory:" gives an
// ephemeral store for tests.
type SQLiteService struct {
	db *sql.DB
}

// Open opens the plan database at path, creating the schema if needed.
func Open(path string) (*SQLiteService, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize plan database: %w", err)
	}
	return &SQLiteService{db: db}, nil
}

func (s *SQLiteService) Close() error {
	return s.db.Close()
}

func (s *SQLiteService) CreatePlan(ctx context.Context, name string) (*model.Plan, error) {
	if name == "" {
		return nil, fmt.Errorf("payment plan: %w", ErrNameRequired)
	}

	if _, err := findPlan(ctx, s.db, name); err == nil {
		return nil, fmt.Errorf("payment plan %q: %w", name, ErrPlanExists)
	} else if !errors.Is(err, ErrPlanNotFound) {
		return nil, err
	}

	p := &model.Plan{
		ID:        newID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`insert into payment_plans(id, name, created_at) values(?, ?, ?)`,
		p.ID, p.Name, p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment plan: %w", err)
	}
	return p, nil
}

func (s *SQLiteService) CreateUser(ctx context.Context, name string) (*model.User, error) {
	if name == "" {
		return nil, fmt.Errorf("user: %w", ErrNameRequired)
	}

	if _, err := findUser(ctx, s.db, name); err == nil {
		return nil, fmt.Errorf("user %q: %w", name, ErrUserExists)
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	u := &model.User{
		ID:        newID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`insert into users(id, name, payment_plan_id, created_at) values(?, ?, null, ?)`,
		u.ID, u.Name, u.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

func (s *SQLiteService) ListPlans(ctx context.Context, names []string) ([]*model.Plan, error) {
	query := `select id, name, created_at from payment_plans order by name`
	var args []any
	if len(names) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(names)), ",")
		query = fmt.Sprintf(
			`select id, name, created_at from payment_plans where name in (%s) order by name`,
			placeholders)
		for _, n := range names {
			args = append(args, n)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment plans: %w", err)
	}
	defer rows.Close()

	var plans []*model.Plan
	for rows.Next() {
		p := &model.Plan{}
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list payment plans: %w", err)
	}

	for _, p := range plans {
		users, err := s.planUsers(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Users = users
	}
	return plans, nil
}

func (s *SQLiteService) SetUserPlan(ctx context.Context, userName, planName string) (*model.Assignment, error) {
	if userName == "" {
		return nil, fmt.Errorf("user: %w", ErrNameRequired)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin plan change: %w", err)
	}
	defer tx.Rollback()

	user, err := findUser(ctx, tx, userName)
	if err != nil {
		return nil, err
	}

	var old *model.Plan
	if user.PlanID != "" {
		old, err = findPlanByID(ctx, tx, user.PlanID)
		if err != nil {
			return nil, err
		}
	}

	var next *model.Plan
	var nextID any // null clears membership
	if planName != "" {
		next, err = findPlan(ctx, tx, planName)
		if err != nil {
			return nil, err
		}
		nextID = next.ID
	}

	if _, err := tx.ExecContext(ctx,
		`update users set payment_plan_id = ? where id = ?`, nextID, user.ID); err != nil {
		return nil, fmt.Errorf("failed to update user %q: %w", userName, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit plan change: %w", err)
	}

	user.PlanID = ""
	if next != nil {
		user.PlanID = next.ID
	}
	return &model.Assignment{User: user, Old: old, New: next}, nil
}

func (s *SQLiteService) planUsers(ctx context.Context, planID string) ([]*model.User, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, name, created_at from users where payment_plan_id = ? order by name`,
		planID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plan members: %w", err)
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		u := &model.User{PlanID: planID}
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list plan members: %w", err)
	}
	return users, nil
}

// querier lets the lookup helpers run against either the database or an
// open transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findPlan(ctx context.Context, q querier, name string) (*model.Plan, error) {
	p := &model.Plan{}
	err := q.QueryRowContext(ctx,
		`select id, name, created_at from payment_plans where name = ?`, name).
		Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment plan %q: %w", name, ErrPlanNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up payment plan %q: %w", name, err)
	}
	return p, nil
}

func findPlanByID(ctx context.Context, q querier, id string) (*model.Plan, error) {
	p := &model.Plan{}
	err := q.QueryRowContext(ctx,
		`select id, name, created_at from payment_plans where id = ?`, id).
		Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("payment plan id %q: %w", id, ErrPlanNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up payment plan id %q: %w", id, err)
	}
	return p, nil
}

func findUser(ctx context.Context, q querier, name string) (*model.User, error) {
	u := &model.User{}
	var planID sql.NullString
	err := q.QueryRowContext(ctx,
		`select id, name, payment_plan_id, created_at from users where name = ?`, name).
		Scan(&u.ID, &u.Name, &planID, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", name, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %q: %w", name, err)
	}
	u.PlanID = planID.String
	return u, nil
}

// newID generates a 16-character hex identifier for plans and users.
func newID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
}
