package role

import (
	"context"

	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var listOptions = pkg.ListOptions{
	FilterFields: []string{"name"},
	SortFields:   []string{"id", "name", "created_at", "updated_at"},
}

// roleRepository implements domain.RoleRepository using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a RoleRepository backed by the given GORM database.
func NewRoleRepository(db *gorm.DB) domain.RoleRepository {
	return &roleRepository{db: db}
}

// Create inserts a new role.
func (r *roleRepository) Create(ctx context.Context, role *domain.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a role by its primary key.
func (r *roleRepository) GetByID(ctx context.Context, id uint) (*domain.Role, error) {
	var role domain.Role
	if err := r.db.WithContext(ctx).First(&role, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &role, nil
}

// List returns a paginated, sorted, filtered, and searched page of roles.
func (r *roleRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Role], error) {
	base := r.db.WithContext(ctx).Model(&domain.Role{})
	return pkg.Paginate[domain.Role](base, req, listOptions)
}

// Update saves changes to an existing role.
func (r *roleRepository) Update(ctx context.Context, role *domain.Role) error {
	if err := r.db.WithContext(ctx).Save(role).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a role by ID.
func (r *roleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Role{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
