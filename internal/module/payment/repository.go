package payment

import (
	"context"

	"gorm.io/gorm"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// Allowed fields for sorting and filtering in List queries.
var listOptions = pkg.ListOptions{
	FilterFields: []string{"subscriber_id", "reference", "confirmed", "amount"},
	SortFields:   []string{"id", "amount", "date_of_payment", "created_at", "updated_at"},
}

// paymentRepository implements domain.PaymentRepository using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a PaymentRepository backed by the given GORM
// database.
func NewPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create inserts a new payment.
func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// GetByID retrieves a payment by its primary key.
func (r *paymentRepository) GetByID(ctx context.Context, id uint) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, pkg.MapDBError(err)
	}
	return &p, nil
}

// List returns a paginated, sorted, filtered, and searched page of payments.
func (r *paymentRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Payment], error) {
	base := r.db.WithContext(ctx).Model(&domain.Payment{})
	return pkg.Paginate[domain.Payment](base, req, listOptions)
}

// ListBySubscriber returns all payments of one subscriber, newest first.
func (r *paymentRepository) ListBySubscriber(ctx context.Context, subscriberID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ?", subscriberID).
		Order("date_of_payment DESC").
		Find(&payments).Error
	if err != nil {
		return nil, pkg.MapDBError(err)
	}
	return payments, nil
}

// Update saves changes to an existing payment.
func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return pkg.MapDBError(err)
	}
	return nil
}

// Delete removes a payment by ID.
func (r *paymentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Payment{}, id)
	if result.Error != nil {
		return pkg.MapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
