package payment

import "time"

// CreatePaymentRequest represents the input for recording a payment.
type CreatePaymentRequest struct {
	SubscriberID  uint      `json:"subscriber_id" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	DateOfPayment time.Time `json:"date_of_payment" binding:"required"`
}
