package staff

import (
	"context"

	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/codes"
	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var listOptions = pkg.ListOptions{
	FilterFields: []string{"code", "name", "email", "role_id"},
	SortFields:   []string{"id", "code", "name", "email", "created_at", "updated_at"},
}

// staffRepository implements domain.StaffRepository using GORM.
type staffRepository struct {
	db     *gorm.DB
	alloc  *codes.Allocator
	prefix string
}

// NewStaffRepository creates a StaffRepository backed by the given GORM
// database. prefix is the 3-letter staff code prefix.
func NewStaffRepository(db *gorm.DB, alloc *codes.Allocator, prefix string) domain.StaffRepository {
	return &staffRepository{db: db, alloc: alloc, prefix: prefix}
}

// Create allocates the staff code and inserts the record in one serialized
// transaction.
func (r *staffRepository) Create(ctx context.Context, st *domain.Staff) error {
	return r.alloc.Allocate(ctx, r.db, r.prefix, &domain.Staff{}, func(tx *gorm.DB, code string) error {
		st.Code = code
		if err := tx.Create(st).Error; err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// GetByID retrieves a staff record with its role preloaded.
func (r *staffRepository) GetByID(ctx context.Context, id uint) (*domain.Staff, error) {
	var st domain.Staff
	if err := r.db.WithContext(ctx).Preload("Role").First(&st, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &st, nil
}

// List returns a paginated, sorted, filtered, and searched page of staff.
func (r *staffRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Staff], error) {
	base := r.db.WithContext(ctx).Model(&domain.Staff{}).Preload("Role")
	return pkg.Paginate[domain.Staff](base, req, listOptions)
}

// Update saves changes to an existing staff record.
func (r *staffRepository) Update(ctx context.Context, st *domain.Staff) error {
	if err := r.db.WithContext(ctx).Save(st).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a staff record by ID.
func (r *staffRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Staff{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
