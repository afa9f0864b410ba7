package assessment

import "context"

type StoreAPI interface {
	UpsertRecord(ctx context.Context, rec Record) (string, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]Record, error)
	RecordsForEmployee(ctx context.Context, employeeID, period string) ([]Record, error)
	EmployeeIDsForPeriod(ctx context.Context, period string) ([]string, error)
	SaveSnapshot(ctx context.Context, snap Snapshot) (string, error)
	LatestSnapshot(ctx context.Context, employeeID, period string) (Snapshot, error)
}
