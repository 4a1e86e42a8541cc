package models

import (
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
)

// Payment là một khoản thanh toán đã ghi nhận cho booking.
// Bản ghi bất biến sau khi tạo, không sửa không xóa.
type Payment struct {
	ID            uint                    `json:"id" gorm:"primaryKey"`
	BookingID     uint                    `json:"bookingId" gorm:"index"`
	Amount        float64                 `json:"amount"`
	Method        constants.PaymentMethod `json:"method" gorm:"size:32"`
	Type          constants.PaymentType   `json:"type" gorm:"size:32"`
	Status        int                     `json:"status" gorm:"default:1"` // 0: pending, 1: completed
	TransactionID string                  `json:"transactionId,omitempty" gorm:"size:64"`
	CreatedAt     time.Time               `gorm:"autoCreateTime" json:"createdAt"`
}
