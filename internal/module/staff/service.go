package staff

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/membercore/membercore/internal/domain"
)

// staffService implements domain.StaffService.
type staffService struct {
	repo  domain.StaffRepository
	roles domain.RoleRepository
}

// NewStaffService creates a StaffService with the given repositories.
func NewStaffService(repo domain.StaffRepository, roles domain.RoleRepository) domain.StaffService {
	return &staffService{repo: repo, roles: roles}
}

// CreateStaff validates input, resolves the referenced role, and persists
// the record. The staff code is allocated by the repository at insert time.
func (s *staffService) CreateStaff(ctx context.Context, name, email string, roleID *uint) (*domain.Staff, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateStaff(name, email); err != nil {
		return nil, err
	}
	if err := s.checkRole(ctx, roleID); err != nil {
		return nil, err
	}

	st := &domain.Staff{Name: name, Email: email, RoleID: roleID}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// GetStaff retrieves a staff record by ID.
func (s *staffService) GetStaff(ctx context.Context, id uint) (*domain.Staff, error) {
	return s.repo.GetByID(ctx, id)
}

// ListStaff returns a paginated list of staff.
func (s *staffService) ListStaff(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Staff], error) {
	return s.repo.List(ctx, req)
}

// UpdateStaff loads the existing record, applies changes, and persists them.
func (s *staffService) UpdateStaff(ctx context.Context, id uint, name, email string, roleID *uint) (*domain.Staff, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateStaff(name, email); err != nil {
		return nil, err
	}
	if err := s.checkRole(ctx, roleID); err != nil {
		return nil, err
	}

	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	st.Name = name
	st.Email = email
	st.RoleID = roleID

	if err := s.repo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteStaff removes a staff record by ID.
func (s *staffService) DeleteStaff(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkRole verifies the referenced role exists when a role ID is given.
func (s *staffService) checkRole(ctx context.Context, roleID *uint) error {
	if roleID == nil {
		return nil
	}
	if _, err := s.roles.GetByID(ctx, *roleID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "role does not exist", nil)
		}
		return err
	}
	return nil
}

// validateStaff checks that name and email are present and well-formed.
func validateStaff(name, email string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
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
