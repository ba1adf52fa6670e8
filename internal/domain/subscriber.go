package domain

import "context"

// Subscriber is a member of the organization. Code is the human-readable
// membership code assigned once at creation and never mutated.
type Subscriber struct {
	BaseModel
	Code   string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone  string `gorm:"size:30" json:"phone"`
	PlanID *uint  `json:"plan_id"`
	Plan   *Plan  `json:"plan,omitempty"`
}

// SubscriberRepository defines the data access interface for subscribers.
// Create allocates the membership code as part of the insert.
type SubscriberRepository interface {
	Create(ctx context.Context, sub *Subscriber) error
	GetByID(ctx context.Context, id uint) (*Subscriber, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Subscriber], error)
	Update(ctx context.Context, sub *Subscriber) error
	Delete(ctx context.Context, id uint) error
}

// SubscriberService defines the business logic interface for subscribers.
type SubscriberService interface {
	CreateSubscriber(ctx context.Context, name, email, phone string, planID *uint) (*Subscriber, error)
	GetSubscriber(ctx context.Context, id uint) (*Subscriber, error)
	ListSubscribers(ctx context.Context, req PageRequest) (*PageResult[Subscriber], error)
	UpdateSubscriber(ctx context.Context, id uint, name, email, phone string, planID *uint) (*Subscriber, error)
	DeleteSubscriber(ctx context.Context, id uint) error
}
