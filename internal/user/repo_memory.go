package user

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
	rows   map[int64]User
	nextID int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{rows: make(map[int64]User), nextID: 1}
}

func (r *MemoryRepo) List(ctx context.Context) ([]User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]User, 0, len(r.rows))
	for _, v := range r.rows {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return v, nil
}

func (r *MemoryRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if strings.EqualFold(v.Username, username) {
			return v, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if strings.EqualFold(v.Email, email) {
			return v, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) GetByEmployee(ctx context.Context, employeeID int64) (User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.rows {
		if v.EmployeeID != nil && *v.EmployeeID == employeeID {
			return v, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MemoryRepo) Create(ctx context.Context, v User) (User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v.UserID = r.nextID
	r.nextID++
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}
	v.UpdatedAt = v.CreatedAt
	r.rows[v.UserID] = v
	return v, nil
}

func (r *MemoryRepo) Update(ctx context.Context, v User) (User, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[v.UserID]; !ok {
		return User{}, ErrNotFound
	}
	v.UpdatedAt = time.Now().UTC()
	r.rows[v.UserID] = v
	return v, nil
}

func (r *MemoryRepo) UpdatePassword(ctx context.Context, id int64, hash string) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return ErrNotFound
	}
	v.PasswordHash = hash
	v.UpdatedAt = time.Now().UTC()
	r.rows[id] = v
	return nil
}

func (r *MemoryRepo) SetActive(ctx context.Context, id int64, active bool) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.rows[id]
	if !ok {
		return ErrNotFound
	}
	v.IsActive = active
	v.UpdatedAt = time.Now().UTC()
	r.rows[id] = v
	return nil
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
