package employee

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	employees map[string]Employee
	nextID    int
}

func newFakeStore() *fakeStore {
	return &fakeStore{employees: make(map[string]Employee), nextID: 1}
}

func (f *fakeStore) Get(_ context.Context, id string) (*Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &emp, nil
}

func (f *fakeStore) List(_ context.Context, team string, limit, offset int) ([]Employee, error) {
	var out []Employee
	for _, e := range f.employees {
		if team == "" || e.Team == team {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, emp Employee) (string, error) {
	id := string(rune('A' + f.nextID))
	f.nextID++
	emp.ID = id
	f.employees[id] = emp
	return id, nil
}

func (f *fakeStore) Update(_ context.Context, id string, emp Employee) error {
	if _, ok := f.employees[id]; !ok {
		return ErrNotFound
	}
	emp.ID = id
	f.employees[id] = emp
	return nil
}

func (f *fakeStore) Deactivate(_ context.Context, id string) error {
	emp, ok := f.employees[id]
	if !ok {
		return ErrNotFound
	}
	emp.Status = StatusInactive
	f.employees[id] = emp
	return nil
}

func (f *fakeStore) TeamMembers(_ context.Context, managerID string) ([]Employee, error) {
	var out []Employee
	for _, e := range f.employees {
		if e.ManagerID == managerID && e.Status == StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc := NewService(newFakeStore())
	id, err := svc.Create(context.Background(), Employee{Name: "Ada", Email: "ada@example.com", Role: "engineer"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	emp, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if emp.Status != StatusActive {
		t.Fatalf("status = %q, want %q", emp.Status, StatusActive)
	}
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()
	if _, err := svc.Create(ctx, Employee{Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, Employee{Name: "Other", Email: "ada@example.com"}); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()
	if _, err := svc.Create(ctx, Employee{Name: "", Email: "a@b.com"}); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := svc.Create(ctx, Employee{Name: "Ada", Email: "not-an-email"}); err == nil {
		t.Fatal("expected error for bad email")
	}
}

func TestDeactivateRemovesFromTeam(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	mgrID, _ := svc.Create(ctx, Employee{Name: "Mgr", Email: "mgr@example.com", Role: "manager"})
	empID, err := svc.Create(ctx, Employee{Name: "Ada", Email: "ada@example.com", ManagerID: mgrID})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	members, err := svc.TeamMembers(ctx, mgrID)
	if err != nil || len(members) != 1 {
		t.Fatalf("TeamMembers = %v, %v", members, err)
	}
	if err := svc.Deactivate(ctx, empID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	members, err = svc.TeamMembers(ctx, mgrID)
	if err != nil || len(members) != 0 {
		t.Fatalf("TeamMembers after deactivate = %v, %v", members, err)
	}
}
