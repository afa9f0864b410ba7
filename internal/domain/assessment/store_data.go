package assessment

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (s *Store) UpsertRecord(ctx context.Context, rec Record) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO assessment_records (employee_id, period, category, kpi, actual_value, notes)
    VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
    ON CONFLICT (employee_id, period, category, kpi)
    DO UPDATE SET actual_value = EXCLUDED.actual_value, notes = EXCLUDED.notes, updated_at = now()
    RETURNING id
  `, rec.EmployeeID, rec.Period, rec.Category, rec.KPI, rec.ActualValue, rec.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListRecords(ctx context.Context, filter ListFilter) ([]Record, error) {
	q := psql.Select("id", "employee_id", "period", "category", "kpi", "actual_value", "COALESCE(notes, '')", "created_at", "updated_at").
		From("assessment_records").
		OrderBy("employee_id", "period", "category", "kpi")
	if filter.EmployeeID != "" {
		q = q.Where(sq.Eq{"employee_id": filter.EmployeeID})
	}
	if filter.Period != "" {
		q = q.Where(sq.Eq{"period": filter.Period})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.EmployeeID, &r.Period, &r.Category, &r.KPI, &r.ActualValue, &r.Notes, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) RecordsForEmployee(ctx context.Context, employeeID, period string) ([]Record, error) {
	return s.ListRecords(ctx, ListFilter{EmployeeID: employeeID, Period: period})
}

func (s *Store) EmployeeIDsForPeriod(ctx context.Context, period string) ([]string, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT employee_id FROM assessment_records WHERE period = $1 ORDER BY employee_id
  `, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *Store) SaveSnapshot(ctx context.Context, snap Snapshot) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO assessment_snapshots (employee_id, period, overall_percent, rating, payload)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id
  `, snap.EmployeeID, snap.Period, snap.OverallPercent, snap.Rating, snap.Payload).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) LatestSnapshot(ctx context.Context, employeeID, period string) (Snapshot, error) {
	var snap Snapshot
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, period, overall_percent, rating, payload, created_at
    FROM assessment_snapshots
    WHERE employee_id = $1 AND period = $2
    ORDER BY created_at DESC
    LIMIT 1
  `, employeeID, period).Scan(&snap.ID, &snap.EmployeeID, &snap.Period, &snap.OverallPercent, &snap.Rating, &snap.Payload, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, err
	}
	return snap, nil
}
