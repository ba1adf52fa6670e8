package plan

import "github.com/gin-gonic/gin"

// PlanModule implements the app.Module interface for the plan domain.
type PlanModule struct {
	handler *PlanHandler
}

// NewModule creates a PlanModule with the given handler.
// Panics if h is nil.
func NewModule(h *PlanHandler) *PlanModule {
	if h == nil {
		panic("plan.NewModule: handler must not be nil")
	}
	return &PlanModule{handler: h}
}

// RegisterRoutes registers plan API routes.
func (m *PlanModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/plans", m.handler.Create)
	api.GET("/plans/:id", m.handler.Get)
	api.GET("/plans", m.handler.List)
	api.PUT("/plans/:id", m.handler.Update)
	api.DELETE("/plans/:id", m.handler.Delete)
}
