package subscriber

import "github.com/gin-gonic/gin"

// SubscriberModule implements the app.Module interface for the subscriber domain.
type SubscriberModule struct {
	handler *SubscriberHandler
}

// NewModule creates a SubscriberModule with the given handler.
// Panics if h is nil.
func NewModule(h *SubscriberHandler) *SubscriberModule {
	if h == nil {
		panic("subscriber.NewModule: handler must not be nil")
	}
	return &SubscriberModule{handler: h}
}

// RegisterRoutes registers subscriber API routes.
func (m *SubscriberModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/subscribers", m.handler.Create)
	api.GET("/subscribers/:id", m.handler.Get)
	api.GET("/subscribers", m.handler.List)
	api.PUT("/subscribers/:id", m.handler.Update)
	api.DELETE("/subscribers/:id", m.handler.Delete)
}
