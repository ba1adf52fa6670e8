package domain

import (
	"context"
	"time"
)

// Payment is one payment made by a subscriber. Reference is a generated
// receipt identifier; Confirmed flips to true once the payment is verified.
type Payment struct {
	BaseModel
	SubscriberID  uint        `gorm:"index;not null" json:"subscriber_id"`
	Subscriber    *Subscriber `json:"subscriber,omitempty"`
	Reference     string      `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	Amount        float64     `gorm:"not null" json:"amount"`
	DateOfPayment time.Time   `gorm:"not null" json:"date_of_payment"`
	Confirmed     bool        `gorm:"not null;default:false" json:"confirmed"`
}

// PaymentRepository defines the data access interface for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id uint) (*Payment, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Payment], error)
	ListBySubscriber(ctx context.Context, subscriberID uint) ([]Payment, error)
	Update(ctx context.Context, p *Payment) error
	Delete(ctx context.Context, id uint) error
}

// PaymentService defines the business logic interface for payments.
type PaymentService interface {
	CreatePayment(ctx context.Context, subscriberID uint, amount float64, dateOfPayment time.Time) (*Payment, error)
	GetPayment(ctx context.Context, id uint) (*Payment, error)
	ListPayments(ctx context.Context, req PageRequest) (*PageResult[Payment], error)
	ConfirmPayment(ctx context.Context, id uint) (*Payment, error)
	DeletePayment(ctx context.Context, id uint) error
	// Standing derives the subscriber's current standing from its payment
	// history. Returns nil (and nil error) when no confirmed payment exists.
	Standing(ctx context.Context, subscriberID uint) (*Standing, error)
}
