package domain

import "context"

// Plan is a membership package a subscriber can be enrolled in.
type Plan struct {
	BaseModel
	Name         string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description  string  `gorm:"size:255" json:"description"`
	Price        float64 `gorm:"not null" json:"price"`
	DurationDays int     `gorm:"not null" json:"duration_days"`
}

// PlanRepository defines the data access interface for plans.
type PlanRepository interface {
	Create(ctx context.Context, plan *Plan) error
	GetByID(ctx context.Context, id uint) (*Plan, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Plan], error)
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uint) error
}

// PlanService defines the business logic interface for plans.
type PlanService interface {
	CreatePlan(ctx context.Context, name, description string, price float64, durationDays int) (*Plan, error)
	GetPlan(ctx context.Context, id uint) (*Plan, error)
	ListPlans(ctx context.Context, req PageRequest) (*PageResult[Plan], error)
	UpdatePlan(ctx context.Context, id uint, name, description string, price float64, durationDays int) (*Plan, error)
	DeletePlan(ctx context.Context, id uint) error
}
