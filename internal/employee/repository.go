package employee

import "context"

// Repository is the persistence contract for employees.
// Implementations must return ErrNotFound for missing ids and resolve
// RoleName on reads.
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	SearchByName(ctx context.Context, name string) ([]Employee, error)
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)
	ListByRole(ctx context.Context, roleID int64) ([]Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
}
