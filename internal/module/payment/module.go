package payment

import "github.com/gin-gonic/gin"

// PaymentModule implements the app.Module interface for the payment domain.
type PaymentModule struct {
	handler *PaymentHandler
}

// NewModule creates a PaymentModule with the given handler.
// Panics if h is nil.
func NewModule(h *PaymentHandler) *PaymentModule {
	if h == nil {
		panic("payment.NewModule: handler must not be nil")
	}
	return &PaymentModule{handler: h}
}

// RegisterRoutes registers payment API routes, including the derived
// standing endpoint on the subscriber resource.
func (m *PaymentModule) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/payments", m.handler.Create)
	api.GET("/payments/:id", m.handler.Get)
	api.GET("/payments", m.handler.List)
	api.POST("/payments/:id/confirm", m.handler.Confirm)
	api.DELETE("/payments/:id", m.handler.Delete)

	api.GET("/subscribers/:id/standing", m.handler.Standing)
}
