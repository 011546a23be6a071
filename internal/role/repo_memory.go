package role

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory repository useful for tests and early development.
type MemoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]Role
	nextID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[int64]Role), nextID: 1}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Role, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Role, 0, len(r.rows))
	for _, v := range r.rows {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoleID < out[j].RoleID })
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Role, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return Role{}, ErrNotFound
	}
	return v, nil
}

func (r *MemoryRepo) GetByName(ctx context.Context, name string) (Role, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if strings.EqualFold(v.RoleName, name) {
			return v, nil
		}
	}
	return Role{}, ErrNotFound
}

func (r *MemoryRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, err := r.GetByName(ctx, name)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MemoryRepo) Create(ctx context.Context, v Role) (Role, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v.RoleID = r.nextID
	r.nextID++
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	v.UpdatedAt = v.CreatedAt
	r.rows[v.RoleID] = v
	return v, nil
}

func (r *MemoryRepo) Update(ctx context.Context, v Role) (Role, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[v.RoleID]; !ok {
		return Role{}, ErrNotFound
	}
	v.UpdatedAt = time.Now().UTC()
	r.rows[v.RoleID] = v
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
