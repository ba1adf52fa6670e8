package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// StaffHandler handles REST API requests for the staff resource.
type StaffHandler struct {
	svc domain.StaffService
}

// NewStaffHandler creates a StaffHandler with the given service.
func NewStaffHandler(svc domain.StaffService) *StaffHandler {
	return &StaffHandler{svc: svc}
}

// Create handles POST /api/v1/staff.
func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	st, err := h.svc.CreateStaff(c.Request.Context(), req.Name, req.Email, req.RoleID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    st,
	})
}

// Get handles GET /api/v1/staff/:id.
func (h *StaffHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	st, err := h.svc.GetStaff(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, st)
}

// List handles GET /api/v1/staff.
func (h *StaffHandler) List(c *gin.Context) {
	req, err := pkg.ParsePageRequest(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListStaff(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/staff/:id.
func (h *StaffHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateStaffRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	st, err := h.svc.UpdateStaff(c.Request.Context(), id, req.Name, req.Email, req.RoleID)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, st)
}

// Delete handles DELETE /api/v1/staff/:id.
func (h *StaffHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteStaff(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
