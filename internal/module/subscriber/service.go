package subscriber

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/membercore/membercore/internal/domain"
)

// subscriberService implements domain.SubscriberService.
type subscriberService struct {
	repo  domain.SubscriberRepository
	plans domain.PlanRepository
}

// NewSubscriberService creates a SubscriberService with the given repositories.
func NewSubscriberService(repo domain.SubscriberRepository, plans domain.PlanRepository) domain.SubscriberService {
	return &subscriberService{repo: repo, plans: plans}
}

// CreateSubscriber validates input, resolves the referenced plan, and
// persists a new subscriber. The membership code is allocated by the
// repository at insert time.
func (s *subscriberService) CreateSubscriber(ctx context.Context, name, email, phone string, planID *uint) (*domain.Subscriber, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if err := validateNameEmail(name, email); err != nil {
		return nil, err
	}
	if err := s.checkPlan(ctx, planID); err != nil {
		return nil, err
	}

	sub := &domain.Subscriber{
		Name:   name,
		Email:  email,
		Phone:  phone,
		PlanID: planID,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// GetSubscriber retrieves a subscriber by ID.
func (s *subscriberService) GetSubscriber(ctx context.Context, id uint) (*domain.Subscriber, error) {
	return s.repo.GetByID(ctx, id)
}

// ListSubscribers returns a paginated list of subscribers.
func (s *subscriberService) ListSubscribers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Subscriber], error) {
	return s.repo.List(ctx, req)
}

// UpdateSubscriber loads the existing subscriber, applies changes, and
// persists them.
func (s *subscriberService) UpdateSubscriber(ctx context.Context, id uint, name, email, phone string, planID *uint) (*domain.Subscriber, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if err := validateNameEmail(name, email); err != nil {
		return nil, err
	}
	if err := s.checkPlan(ctx, planID); err != nil {
		return nil, err
	}

	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.Name = name
	sub.Email = email
	sub.Phone = phone
	sub.PlanID = planID

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// DeleteSubscriber removes a subscriber by ID.
func (s *subscriberService) DeleteSubscriber(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkPlan verifies the referenced plan exists when a plan ID is given.
func (s *subscriberService) checkPlan(ctx context.Context, planID *uint) error {
	if planID == nil {
		return nil
	}
	if _, err := s.plans.GetByID(ctx, *planID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "plan does not exist", nil)
		}
		return err
	}
	return nil
}

// validateNameEmail checks that name and email are present and well-formed.
func validateNameEmail(name, email string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) < 2 {
		return domain.NewAppError(domain.CodeValidation, "name must be at least 2 characters", nil)
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}
	if email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	return nil
}
