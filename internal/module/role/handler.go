package role

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// RoleHandler handles REST API requests for the role resource.
type RoleHandler struct {
	svc domain.RoleService
}

// NewRoleHandler creates a RoleHandler with the given service.
func NewRoleHandler(svc domain.RoleService) *RoleHandler {
	return &RoleHandler{svc: svc}
}

// Create handles POST /api/v1/roles.
func (h *RoleHandler) Create(c *gin.Context) {
	var req CreateRoleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	role, err := h.svc.CreateRole(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    role,
	})
}

// Get handles GET /api/v1/roles/:id.
func (h *RoleHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	role, err := h.svc.GetRole(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, role)
}

// List handles GET /api/v1/roles.
func (h *RoleHandler) List(c *gin.Context) {
	req, err := pkg.ParsePageRequest(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListRoles(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/roles/:id.
func (h *RoleHandler) Update(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	var req UpdateRoleRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	role, err := h.svc.UpdateRole(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, role)
}

// Delete handles DELETE /api/v1/roles/:id.
func (h *RoleHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeleteRole(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}
