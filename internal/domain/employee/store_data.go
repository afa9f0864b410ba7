package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, name, email, role,
    COALESCE(team, ''),
    COALESCE(manager_id::text, ''),
    status, created_at, updated_at
`

func scanEmployee(row pgx.Row) (*Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Role, &emp.Team, &emp.ManagerID, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (s *Store) Get(ctx context.Context, employeeID string) (*Employee, error) {
	return scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID))
}

func (s *Store) List(ctx context.Context, team string, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE ($1 = '' OR team = $1)
    ORDER BY name
    LIMIT $2 OFFSET $3
  `, team, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, email, role, team, manager_id, status)
    VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, '')::uuid, $6)
    RETURNING id
  `, emp.Name, emp.Email, emp.Role, emp.Team, emp.ManagerID, emp.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, employeeID string, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, email = $3, role = $4, team = NULLIF($5, ''),
        manager_id = NULLIF($6, '')::uuid, status = $7, updated_at = now()
    WHERE id = $1
  `, employeeID, emp.Name, emp.Email, emp.Role, emp.Team, emp.ManagerID, emp.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Deactivate(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET status = $2, updated_at = now() WHERE id = $1
  `, employeeID, StatusInactive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) TeamMembers(ctx context.Context, managerID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE manager_id = $1 AND status = $2
    ORDER BY name
  `, managerID, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *emp)
	}
	return out, rows.Err()
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM employees WHERE lower(email) = lower($1)
  `, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
