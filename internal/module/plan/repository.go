package plan

import (
	"context"

	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var listOptions = pkg.ListOptions{
	FilterFields: []string{"name", "price", "duration_days"},
	SortFields:   []string{"id", "name", "price", "duration_days", "created_at", "updated_at"},
}

// planRepository implements domain.PlanRepository using GORM.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a PlanRepository backed by the given GORM database.
func NewPlanRepository(db *gorm.DB) domain.PlanRepository {
	return &planRepository{db: db}
}

// Create inserts a new plan.
func (r *planRepository) Create(ctx context.Context, plan *domain.Plan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a plan by its primary key.
func (r *planRepository) GetByID(ctx context.Context, id uint) (*domain.Plan, error) {
	var plan domain.Plan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &plan, nil
}

// List returns a paginated, sorted, filtered, and searched page of plans.
func (r *planRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Plan], error) {
	base := r.db.WithContext(ctx).Model(&domain.Plan{})
	return pkg.Paginate[domain.Plan](base, req, listOptions)
}

// Update saves changes to an existing plan.
func (r *planRepository) Update(ctx context.Context, plan *domain.Plan) error {
	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a plan by ID.
func (r *planRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Plan{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
