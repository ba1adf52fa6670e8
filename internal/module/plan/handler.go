package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// PlanHandler handles REST API requests for the plan resource.
type PlanHandler struct {
	svc domain.PlanService
}

// NewPlanHandler creates a PlanHandler with the given service.
func NewPlanHandler(svc domain.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// Create handles POST /api/v1/plans.
func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	plan, err := h.svc.CreatePlan(c.Request.Context(), req.Name, req.Description, req.Price, req.DurationDays)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    plan,
	})
}

// Get handles GET /api/v1/plans/:id.
func (h *PlanHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	plan, err := h.svc.GetPlan(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, plan)
}

// List handles GET /api/v1/plans.
func (h *PlanHandler) List(c *gin.Context) {
	req, err := pkg.ParsePageRequest(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListPlans(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/plans/:id.
func (h *PlanHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdatePlanRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	plan, err := h.svc.UpdatePlan(c.Request.Context(), id, req.Name, req.Description, req.Price, req.DurationDays)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, plan)
}

// Delete handles DELETE /api/v1/plans/:id.
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeletePlan(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
