package payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/membercore/membercore/internal/domain"
)

// paymentService implements domain.PaymentService.
type paymentService struct {
	repo        domain.PaymentRepository
	subscribers domain.SubscriberRepository
	now         func() time.Time
}

// NewPaymentService creates a PaymentService with the given repositories.
func NewPaymentService(repo domain.PaymentRepository, subscribers domain.SubscriberRepository) domain.PaymentService {
	return &paymentService{repo: repo, subscribers: subscribers, now: time.Now}
}

// CreatePayment validates input, verifies the subscriber exists, and
// persists an unconfirmed payment with a generated receipt reference.
func (s *paymentService) CreatePayment(ctx context.Context, subscriberID uint, amount float64, dateOfPayment time.Time) (*domain.Payment, error) {
	if amount <= 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "amount must be positive", nil)
	}
	if dateOfPayment.IsZero() {
		return nil, domain.NewAppError(domain.CodeValidation, "date_of_payment is required", nil)
	}
	if _, err := s.subscribers.GetByID(ctx, subscriberID); err != nil {
		return nil, err
	}

	p := &domain.Payment{
		SubscriberID:  subscriberID,
		Reference:     uuid.NewString(),
		Amount:        amount,
		DateOfPayment: dateOfPayment,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPayment retrieves a payment by ID.
func (s *paymentService) GetPayment(ctx context.Context, id uint) (*domain.Payment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPayments returns a paginated list of payments.
func (s *paymentService) ListPayments(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Payment], error) {
	return s.repo.List(ctx, req)
}

// ConfirmPayment marks a payment as confirmed. Confirming an already
// confirmed payment is a no-op.
func (s *paymentService) ConfirmPayment(ctx context.Context, id uint) (*domain.Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Confirmed {
		return p, nil
	}

	p.Confirmed = true
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePayment removes a payment by ID.
func (s *paymentService) DeletePayment(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Standing derives the subscriber's current standing from its payment
// history. Returns nil without error when the subscriber has no confirmed
// payments.
func (s *paymentService) Standing(ctx context.Context, subscriberID uint) (*domain.Standing, error) {
	if _, err := s.subscribers.GetByID(ctx, subscriberID); err != nil {
		return nil, err
	}

	payments, err := s.repo.ListBySubscriber(ctx, subscriberID)
	if err != nil {
		return nil, err
	}

	return domain.ClassifyStanding(payments, s.now()), nil
}
