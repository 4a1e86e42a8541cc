package models

import "time"

// Service là một dịch vụ trong catalog (giặt ủi, đưa đón, spa...)
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // Đơn giá hiện tại của catalog
	Status      int       `json:"status" gorm:"default:1"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ServiceUsage là một dòng dịch vụ đã cộng vào booking.
// UnitPrice chốt tại thời điểm thêm, không đổi theo catalog về sau.
type ServiceUsage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BookingID  uint      `json:"bookingId" gorm:"index"`
	ServiceID  uint      `json:"serviceId"`
	Service    Service   `json:"service" gorm:"foreignKey:ServiceID"`
	Quantity   int       `json:"quantity"`
	UnitPrice  float64   `json:"unitPrice"`
	TotalPrice float64   `json:"totalPrice"` // Quantity × UnitPrice
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
