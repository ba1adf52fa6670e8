package subscriber

// CreateSubscriberRequest represents the input for creating a subscriber.
type CreateSubscriberRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=100"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"omitempty,max=30"`
	PlanID *uint  `json:"plan_id"`
}

// UpdateSubscriberRequest represents the input for updating a subscriber.
// The membership code is not updatable.
type UpdateSubscriberRequest struct {
	Name   string `json:"name" binding:"required,min=2,max=100"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"omitempty,max=30"`
	PlanID *uint  `json:"plan_id"`
}
