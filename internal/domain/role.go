package domain

import "context"

// Role groups staff by function.
type Role struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

// RoleRepository defines the data access interface for roles.
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	GetByID(ctx context.Context, id uint) (*Role, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Role], error)
	Update(ctx context.Context, role *Role) error
	Delete(ctx context.Context, id uint) error
}

// RoleService defines the business logic interface for roles.
type RoleService interface {
	CreateRole(ctx context.Context, name, description string) (*Role, error)
	GetRole(ctx context.Context, id uint) (*Role, error)
	ListRoles(ctx context.Context, req PageRequest) (*PageResult[Role], error)
	UpdateRole(ctx context.Context, id uint, name, description string) (*Role, error)
	DeleteRole(ctx context.Context, id uint) error
}
