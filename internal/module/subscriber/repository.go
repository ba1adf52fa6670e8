package subscriber

import (
	"context"

	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/codes"
	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var listOptions = pkg.ListOptions{
	FilterFields: []string{"code", "name", "email", "phone", "plan_id"},
	SortFields:   []string{"id", "code", "name", "email", "created_at", "updated_at"},
}

// subscriberRepository implements domain.SubscriberRepository using GORM.
type subscriberRepository struct {
	db     *gorm.DB
	alloc  *codes.Allocator
	prefix string
}

// NewSubscriberRepository creates a SubscriberRepository backed by the given
// GORM database. prefix is the 3-letter membership code prefix.
func NewSubscriberRepository(db *gorm.DB, alloc *codes.Allocator, prefix string) domain.SubscriberRepository {
	return &subscriberRepository{db: db, alloc: alloc, prefix: prefix}
}

// Create allocates the membership code and inserts the subscriber in one
// serialized transaction.
func (r *subscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	return r.alloc.Allocate(ctx, r.db, r.prefix, &domain.Subscriber{}, func(tx *gorm.DB, code string) error {
		sub.Code = code
		if err := tx.Create(sub).Error; err != nil {
			return pkg.MapDBError(err)
		}
		return nil
	})
}

// GetByID retrieves a subscriber with its plan preloaded.
func (r *subscriberRepository) GetByID(ctx context.Context, id uint) (*domain.Subscriber, error) {
	var sub domain.Subscriber
	if err := r.db.WithContext(ctx).Preload("Plan").First(&sub, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &sub, nil
}

// List returns a paginated, sorted, filtered, and searched page of subscribers.
func (r *subscriberRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Subscriber], error) {
	base := r.db.WithContext(ctx).Model(&domain.Subscriber{}).Preload("Plan")
	return pkg.Paginate[domain.Subscriber](base, req, listOptions)
}

// Update saves changes to an existing subscriber. The code column is never
// rewritten.
func (r *subscriberRepository) Update(ctx context.Context, sub *domain.Subscriber) error {
	if err := r.db.WithContext(ctx).Save(sub).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a subscriber by ID.
func (r *subscriberRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Subscriber{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
