package dto

import (
	"time"

	"github.com/BimsaraU/SkyNest-sub000/models"
)

// RecordPaymentRequest là body của POST /bookings/:id/payments
type RecordPaymentRequest struct {
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Method        string  `json:"method" binding:"required"`
	Type          string  `json:"type"`
	TransactionID string  `json:"transactionId"`
}

// PaymentResponse là payment trả về cho client
type PaymentResponse struct {
	ID            uint      `json:"id"`
	BookingID     uint      `json:"bookingId"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Type          string    `json:"type"`
	Status        int       `json:"status"`
	TransactionID string    `json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToPaymentResponse chuyển model sang response
func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Method:        string(p.Method),
		Type:          string(p.Type),
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
