package employee

import "context"

type StoreAPI interface {
	Get(ctx context.Context, employeeID string) (*Employee, error)
	List(ctx context.Context, team string, limit, offset int) ([]Employee, error)
	Create(ctx context.Context, emp Employee) (string, error)
	Update(ctx context.Context, employeeID string, emp Employee) error
	Deactivate(ctx context.Context, employeeID string) error
	TeamMembers(ctx context.Context, managerID string) ([]Employee, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
