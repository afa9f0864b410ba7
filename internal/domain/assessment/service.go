package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"kpiscore/internal/domain/catalog"
	"kpiscore/internal/domain/scoring"
)

type Service struct {
	store   StoreAPI
	catalog *catalog.Catalog
}

func NewService(store StoreAPI, cat *catalog.Catalog) *Service {
	return &Service{store: store, catalog: cat}
}

// SaveBatch validates and upserts a set of KPI actuals. Invalid rows are
// reported per index and skipped; valid rows are still saved.
func (s *Service) SaveBatch(ctx context.Context, items []BatchItem) (BatchResult, error) {
	var res BatchResult
	for i, item := range items {
		if reason := s.validateItem(item); reason != "" {
			res.Issues = append(res.Issues, BatchIssue{Index: i, Reason: reason})
			continue
		}
		_, err := s.store.UpsertRecord(ctx, Record{
			EmployeeID:  item.EmployeeID,
			Period:      item.Period,
			Category:    item.Category,
			KPI:         item.KPI,
			ActualValue: item.Value,
			Notes:       item.Notes,
		})
		if err != nil {
			return res, fmt.Errorf("save record %d: %w", i, err)
		}
		res.Saved++
	}
	return res, nil
}

func (s *Service) validateItem(item BatchItem) string {
	if item.EmployeeID == "" {
		return "employee id is required"
	}
	if item.Period == "" {
		return "period is required"
	}
	if _, ok := s.catalog.Lookup(item.Category, item.KPI); !ok {
		return fmt.Sprintf("unknown KPI %s/%s", item.Category, item.KPI)
	}
	if math.IsNaN(item.Value) || math.IsInf(item.Value, 0) {
		return "value is not finite"
	}
	if item.Value < 0 {
		return "value is negative"
	}
	return ""
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	return s.store.ListRecords(ctx, filter)
}

// Evaluate scores every stored actual for the employee and period and
// persists the result as a snapshot.
func (s *Service) Evaluate(ctx context.Context, employeeID, period string) (scoring.OverallAssessment, error) {
	records, err := s.store.RecordsForEmployee(ctx, employeeID, period)
	if err != nil {
		return scoring.OverallAssessment{}, err
	}
	if len(records) == 0 {
		return scoring.OverallAssessment{}, fmt.Errorf("%w: no records for employee %s in %s", ErrNotFound, employeeID, period)
	}

	actuals := make([]scoring.Actual, 0, len(records))
	for _, r := range records {
		actuals = append(actuals, scoring.Actual{Category: r.Category, KPI: r.KPI, Value: r.ActualValue})
	}
	result, err := scoring.Evaluate(s.catalog, employeeID, period, actuals)
	if err != nil {
		return scoring.OverallAssessment{}, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return scoring.OverallAssessment{}, fmt.Errorf("marshal snapshot: %w", err)
	}
	if _, err := s.store.SaveSnapshot(ctx, Snapshot{
		EmployeeID:     employeeID,
		Period:         period,
		OverallPercent: result.OverallPercent,
		Rating:         result.Rating,
		Payload:        payload,
	}); err != nil {
		return scoring.OverallAssessment{}, fmt.Errorf("save snapshot: %w", err)
	}
	return result, nil
}

// EvaluateAll evaluates every employee with records in the period. An
// employee that fails to evaluate is skipped and reported, the rest of
// the run continues.
func (s *Service) EvaluateAll(ctx context.Context, period string) ([]scoring.OverallAssessment, []EvaluationIssue, error) {
	ids, err := s.store.EmployeeIDsForPeriod(ctx, period)
	if err != nil {
		return nil, nil, err
	}

	var results []scoring.OverallAssessment
	var issues []EvaluationIssue
	for _, id := range ids {
		result, err := s.Evaluate(ctx, id, period)
		if err != nil {
			slog.Warn("evaluation skipped", "employeeId", id, "period", period, "error", err)
			issues = append(issues, EvaluationIssue{EmployeeID: id, Reason: err.Error()})
			continue
		}
		results = append(results, result)
	}
	return results, issues, nil
}

// Latest returns the most recent stored snapshot for the employee and
// period, decoded back into an assessment.
func (s *Service) Latest(ctx context.Context, employeeID, period string) (scoring.OverallAssessment, error) {
	snap, err := s.store.LatestSnapshot(ctx, employeeID, period)
	if err != nil {
		return scoring.OverallAssessment{}, err
	}
	var result scoring.OverallAssessment
	if err := json.Unmarshal(snap.Payload, &result); err != nil {
		return scoring.OverallAssessment{}, fmt.Errorf("decode snapshot %s: %w", snap.ID, err)
	}
	return result, nil
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}
