package employee

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory repository useful for tests and early development.
// RoleName resolution is left to the caller: tests set it directly on rows.
type MemoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]Employee
	nextID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[int64]Employee), nextID: 1}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(Employee) bool { return true }), nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return v, nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if strings.EqualFold(v.Email, email) {
			return v, nil
		}
	}
	return Employee{}, ErrNotFound
}

func (r *MemoryRepo) SearchByName(ctx context.Context, name string) ([]Employee, error) {
	_ = ctx
	needle := strings.ToLower(strings.TrimSpace(name))
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(v Employee) bool {
		return strings.Contains(strings.ToLower(v.FullName()), needle)
	}), nil
}

func (r *MemoryRepo) ListByDepartment(ctx context.Context, department string) ([]Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(v Employee) bool {
		return strings.EqualFold(v.Department, department)
	}), nil
}

func (r *MemoryRepo) ListByRole(ctx context.Context, roleID int64) ([]Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(v Employee) bool { return v.RoleID == roleID }), nil
}

func (r *MemoryRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MemoryRepo) Create(ctx context.Context, v Employee) (Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v.EmployeeID = r.nextID
	r.nextID++
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	v.UpdatedAt = v.CreatedAt
	r.rows[v.EmployeeID] = v
	return v, nil
}

func (r *MemoryRepo) Update(ctx context.Context, v Employee) (Employee, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[v.EmployeeID]; !ok {
		return Employee{}, ErrNotFound
	}
	v.UpdatedAt = time.Now().UTC()
	r.rows[v.EmployeeID] = v
	return v, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *MemoryRepo) collect(keep func(Employee) bool) []Employee {
	out := make([]Employee, 0, len(r.rows))
	for _, v := range r.rows {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
	return out
}
