package plan

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/membercore/membercore/internal/domain"
)

// planService implements domain.PlanService.
type planService struct {
	repo domain.PlanRepository
}

// NewPlanService creates a PlanService with the given repository.
func NewPlanService(repo domain.PlanRepository) domain.PlanService {
	return &planService{repo: repo}
}

// CreatePlan validates input and persists a new plan.
func (s *planService) CreatePlan(ctx context.Context, name, description string, price float64, durationDays int) (*domain.Plan, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validatePlan(name, price, durationDays); err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		Name:         name,
		Description:  description,
		Price:        price,
		DurationDays: durationDays,
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// GetPlan retrieves a plan by ID.
func (s *planService) GetPlan(ctx context.Context, id uint) (*domain.Plan, error) {
	return s.repo.GetByID(ctx, id)
}

// ListPlans returns a paginated list of plans.
func (s *planService) ListPlans(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Plan], error) {
	return s.repo.List(ctx, req)
}

// UpdatePlan loads the existing plan, applies changes, and persists them.
func (s *planService) UpdatePlan(ctx context.Context, id uint, name, description string, price float64, durationDays int) (*domain.Plan, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validatePlan(name, price, durationDays); err != nil {
		return nil, err
	}

	plan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan.Name = name
	plan.Description = description
	plan.Price = price
	plan.DurationDays = durationDays

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// DeletePlan removes a plan by ID.
func (s *planService) DeletePlan(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// validatePlan checks name presence, price sign, and duration.
func validatePlan(name string, price float64, durationDays int) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}
	if price < 0 {
		return domain.NewAppError(domain.CodeValidation, "price must not be negative", nil)
	}
	if durationDays < 1 {
		return domain.NewAppError(domain.CodeValidation, "duration_days must be at least 1", nil)
	}
	return nil
}
