package employee

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.Get(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, team string, limit, offset int) ([]Employee, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, team, limit, offset)
}

func (s *Service) Create(ctx context.Context, emp Employee) (string, error) {
	if err := validate(emp); err != nil {
		return "", err
	}
	exists, err := s.store.EmailExists(ctx, emp.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrDuplicateEmail
	}
	if emp.Status == "" {
		emp.Status = StatusActive
	}
	return s.store.Create(ctx, emp)
}

func (s *Service) Update(ctx context.Context, employeeID string, emp Employee) error {
	if err := validate(emp); err != nil {
		return err
	}
	return s.store.Update(ctx, employeeID, emp)
}

func (s *Service) Deactivate(ctx context.Context, employeeID string) error {
	return s.store.Deactivate(ctx, employeeID)
}

func (s *Service) TeamMembers(ctx context.Context, managerID string) ([]Employee, error) {
	return s.store.TeamMembers(ctx, managerID)
}

func validate(emp Employee) error {
	if strings.TrimSpace(emp.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !strings.Contains(emp.Email, "@") {
		return fmt.Errorf("invalid email %q", emp.Email)
	}
	return nil
}
