package role

// CreateRoleRequest represents the input for creating a role.
type CreateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

// UpdateRoleRequest represents the input for updating a role.
type UpdateRoleRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
}
