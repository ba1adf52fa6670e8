package plan

// CreatePlanRequest represents the input for creating a plan.
type CreatePlanRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Description  string  `json:"description" binding:"omitempty,max=255"`
	Price        float64 `json:"price" binding:"min=0"`
	DurationDays int     `json:"duration_days" binding:"required,min=1"`
}

// UpdatePlanRequest represents the input for updating a plan.
type UpdatePlanRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Description  string  `json:"description" binding:"omitempty,max=255"`
	Price        float64 `json:"price" binding:"min=0"`
	DurationDays int     `json:"duration_days" binding:"required,min=1"`
}
