package domain

import "context"

// Staff is an employee record. Code follows the same format as subscriber
// codes but uses the staff prefix.
type Staff struct {
	BaseModel
	Code   string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	RoleID *uint  `json:"role_id"`
	Role   *Role  `json:"role,omitempty"`
}

// StaffRepository defines the data access interface for staff.
type StaffRepository interface {
	Create(ctx context.Context, st *Staff) error
	GetByID(ctx context.Context, id uint) (*Staff, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Staff], error)
	Update(ctx context.Context, st *Staff) error
	Delete(ctx context.Context, id uint) error
}

// StaffService defines the business logic interface for staff.
type StaffService interface {
	CreateStaff(ctx context.Context, name, email string, roleID *uint) (*Staff, error)
	GetStaff(ctx context.Context, id uint) (*Staff, error)
	ListStaff(ctx context.Context, req PageRequest) (*PageResult[Staff], error)
	UpdateStaff(ctx context.Context, id uint, name, email string, roleID *uint) (*Staff, error)
	DeleteStaff(ctx context.Context, id uint) error
}
