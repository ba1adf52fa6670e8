package staff

// CreateStaffRequest represents the input for creating a staff record.
type CreateStaffRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Email  string `json:"email" binding:"required,email"`
	RoleID *uint  `json:"role_id"`
}

// UpdateStaffRequest represents the input for updating a staff record.
// The staff code is not updatable.
type UpdateStaffRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Email  string `json:"email" binding:"required,email"`
	RoleID *uint  `json:"role_id"`
}
