package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"kpiscore/internal/domain/assessment"
	"kpiscore/internal/platform/config"
)

const JobSnapshotRefresh = "snapshot_refresh"

type Service struct {
	DB          *pgxpool.Pool
	Cfg         config.Config
	Assessments *assessment.Service
	queue       chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, cfg config.Config, assessments *assessment.Service) *Service {
	return &Service{
		DB:          db,
		Cfg:         cfg,
		Assessments: assessments,
		queue:       make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.SnapshotInterval > 0 {
		go s.scheduleSnapshots(ctx, s.Cfg.SnapshotInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) RunNow(ctx context.Context, jobType string, run func(context.Context) (any, error)) (any, error) {
	return s.runJob(ctx, job{Type: jobType, Run: run})
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1, $2)
    RETURNING id
  `, j.Type, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, details_json = $2, completed_at = now()
      WHERE id = $3
    `, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return details, err
}

// scheduleSnapshots re-evaluates every employee with records in the
// current period so stored snapshots track catalog changes.
func (s *Service) scheduleSnapshots(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			period := CurrentPeriod(time.Now())
			s.Enqueue(JobSnapshotRefresh, func(ctx context.Context) (any, error) {
				results, issues, err := s.Assessments.EvaluateAll(ctx, period)
				if err != nil {
					return nil, err
				}
				return map[string]any{
					"period":    period,
					"evaluated": len(results),
					"skipped":   len(issues),
				}, nil
			})
		}
	}
}

// CurrentPeriod formats t as a review quarter, e.g. "2026-Q2".
func CurrentPeriod(t time.Time) string {
	quarter := (int(t.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
}
