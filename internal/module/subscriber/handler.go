package subscriber

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// SubscriberHandler handles REST API requests for the subscriber resource.
type SubscriberHandler struct {
	svc domain.SubscriberService
}

// NewSubscriberHandler creates a SubscriberHandler with the given service.
func NewSubscriberHandler(svc domain.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{svc: svc}
}

// Create handles POST /api/v1/subscribers.
func (h *SubscriberHandler) Create(c *gin.Context) {
	var req CreateSubscriberRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sub, err := h.svc.CreateSubscriber(c.Request.Context(), req.Name, req.Email, req.Phone, req.PlanID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    sub,
	})
}

// Get handles GET /api/v1/subscribers/:id.
func (h *SubscriberHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	sub, err := h.svc.GetSubscriber(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, sub)
}

// List handles GET /api/v1/subscribers.
func (h *SubscriberHandler) List(c *gin.Context) {
	req, err := pkg.ParsePageRequest(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListSubscribers(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/subscribers/:id.
func (h *SubscriberHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateSubscriberRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	sub, err := h.svc.UpdateSubscriber(c.Request.Context(), id, req.Name, req.Email, req.Phone, req.PlanID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, sub)
}

// Delete handles DELETE /api/v1/subscribers/:id.
func (h *SubscriberHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteSubscriber(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
