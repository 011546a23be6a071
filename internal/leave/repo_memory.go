package leave

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory repository useful for tests and early development.
type MemoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]LeaveRequest
	nextID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[int64]LeaveRequest), nextID: 1}
}

func (r *MemoryRepo) List(ctx context.Context) ([]LeaveRequest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(LeaveRequest) bool { return true }), nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (LeaveRequest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return LeaveRequest{}, ErrNotFound
	}
	return v, nil
}

func (r *MemoryRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(v LeaveRequest) bool { return v.EmployeeID == employeeID }), nil
}

func (r *MemoryRepo) ListByStatus(ctx context.Context, status Status) ([]LeaveRequest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(v LeaveRequest) bool { return v.Status == status }), nil
}

func (r *MemoryRepo) Create(ctx context.Context, v LeaveRequest) (LeaveRequest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v.LeaveRequestID = r.nextID
	r.nextID++
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	v.UpdatedAt = v.CreatedAt
	r.rows[v.LeaveRequestID] = v
	return v, nil
}

func (r *MemoryRepo) Update(ctx context.Context, v LeaveRequest) (LeaveRequest, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[v.LeaveRequestID]; !ok {
		return LeaveRequest{}, ErrNotFound
	}
	v.UpdatedAt = time.Now().UTC()
	r.rows[v.LeaveRequestID] = v
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

func (r *MemoryRepo) collect(keep func(LeaveRequest) bool) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(r.rows))
	for _, v := range r.rows {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LeaveRequestID < out[j].LeaveRequestID })
	return out
}
