package staff

import "github.com/gin-gonic/gin"

// StaffModule implements the app.Module interface for the staff domain.
type StaffModule struct {
	handler *StaffHandler
}

// NewModule creates a StaffModule with the given handler.
// Panics if h is nil.
func NewModule(h *StaffHandler) *StaffModule {
	if h == nil {
		panic("staff.NewModule: handler must not be nil")
	}
	return &StaffModule{handler: h}
}

// RegisterRoutes registers staff API routes.
func (m *StaffModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/staff", m.handler.Create)
	api.GET("/staff/:id", m.handler.Get)
	api.GET("/staff", m.handler.List)
	api.PUT("/staff/:id", m.handler.Update)
	api.DELETE("/staff/:id", m.handler.Delete)
}
