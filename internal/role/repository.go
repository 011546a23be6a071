package role

import "context"

// Repository is the persistence contract for roles.
// Implementations must return ErrNotFound for missing ids/names.
type Repository interface {
	List(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, id int64) (Role, error)
	GetByName(ctx context.Context, name string) (Role, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, r Role) (Role, error)
	Update(ctx context.Context, r Role) (Role, error)
	Delete(ctx context.Context, id int64) error
}
