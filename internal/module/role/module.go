package role

import "github.com/gin-gonic/gin"

// RoleModule implements the app.Module interface for the role domain.
type RoleModule struct {
	handler *RoleHandler
}

// NewModule creates a RoleModule with the given handler.
// Panics if h is nil.
func NewModule(h *RoleHandler) *RoleModule {
	if h == nil {
		panic("role.NewModule: handler must not be nil")
	}
	return &RoleModule{handler: h}
}

// RegisterRoutes registers role API routes.
func (m *RoleModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/roles", m.handler.Create)
	api.GET("/roles/:id", m.handler.Get)
	api.GET("/roles", m.handler.List)
	api.PUT("/roles/:id", m.handler.Update)
	api.DELETE("/roles/:id", m.handler.Delete)
}
