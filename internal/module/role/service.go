package role

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/membercore/membercore/internal/domain"
)

// roleService implements domain.RoleService.
type roleService struct {
	repo domain.RoleRepository
}

// NewRoleService creates a RoleService with the given repository.
func NewRoleService(repo domain.RoleRepository) domain.RoleService {
	return &roleService{repo: repo}
}

// CreateRole validates input and persists a new role.
func (s *roleService) CreateRole(ctx context.Context, name, description string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateRole(name, description); err != nil {
		return nil, err
	}

	role := &domain.Role{Name: name, Description: description}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// GetRole retrieves a role by ID.
func (s *roleService) GetRole(ctx context.Context, id uint) (*domain.Role, error) {
	return s.repo.GetByID(ctx, id)
}

// ListRoles returns a paginated list of roles.
func (s *roleService) ListRoles(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Role], error) {
	return s.repo.List(ctx, req)
}

// UpdateRole loads the existing role, applies changes, and persists them.
func (s *roleService) UpdateRole(ctx context.Context, id uint, name, description string) (*domain.Role, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)

	if err := validateRole(name, description); err != nil {
		return nil, err
	}

	role, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role.Name = name
	role.Description = description

	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole removes a role by ID.
func (s *roleService) DeleteRole(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// validateRole checks name presence and field lengths.
func validateRole(name, description string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 100 characters", nil)
	}
	if utf8.RuneCountInString(description) > 255 {
		return domain.NewAppError(domain.CodeValidation, "description must be at most 255 characters", nil)
	}
	return nil
}
