package dto

import (
	"time"

	"github.com/BimsaraU/SkyNest-sub000/models"
)

// AddServiceRequest là body của POST /bookings/:id/services
type AddServiceRequest struct {
	ServiceID uint   `json:"serviceId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Notes     string `json:"notes"`
}

// CreateServiceRequest là body tạo dịch vụ catalog
type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// ServiceUsageResponse là một dòng dịch vụ trả về cho client
type ServiceUsageResponse struct {
	ID          uint      `json:"id"`
	BookingID   uint      `json:"bookingId"`
	ServiceID   uint      `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unitPrice"`
	TotalPrice  float64   `json:"totalPrice"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToServiceUsageResponse chuyển model sang response
func ToServiceUsageResponse(u *models.ServiceUsage) ServiceUsageResponse {
	return ServiceUsageResponse{
		ID:          u.ID,
		BookingID:   u.BookingID,
		ServiceID:   u.ServiceID,
		ServiceName: u.Service.Name,
		Quantity:    u.Quantity,
		UnitPrice:   u.UnitPrice,
		TotalPrice:  u.TotalPrice,
		Notes:       u.Notes,
		CreatedAt:   u.CreatedAt,
	}
}
