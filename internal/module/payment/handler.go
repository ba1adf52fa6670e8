package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/membercore/membercore/internal/domain"
	"github.com/membercore/membercore/internal/pkg"
)

// PaymentHandler handles REST API requests for the payment resource and the
// derived subscriber standing.
type PaymentHandler struct {
	svc domain.PaymentService
}

// NewPaymentHandler creates a PaymentHandler with the given service.
func NewPaymentHandler(svc domain.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Create handles POST /api/v1/payments.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	p, err := h.svc.CreatePayment(c.Request.Context(), req.SubscriberID, req.Amount, req.DateOfPayment)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    p,
	})
}

// Get handles GET /api/v1/payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	p, err := h.svc.GetPayment(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// List handles GET /api/v1/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	req, err := pkg.ParsePageRequest(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.ListPayments(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Confirm handles POST /api/v1/payments/:id/confirm.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	p, err := h.svc.ConfirmPayment(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, p)
}

// Delete handles DELETE /api/v1/payments/:id.
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	if err := h.svc.DeletePayment(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Standing handles GET /api/v1/subscribers/:id/standing. Data is null when
// the subscriber has no confirmed payments.
func (h *PaymentHandler) Standing(c *gin.Context) {
	id, err := pkg.ParseIDParam(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	standing, err := h.svc.Standing(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, standing)
}
