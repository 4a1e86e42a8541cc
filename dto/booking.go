package dto

import (
	"time"

	"github.com/BimsaraU/SkyNest-sub000/models"
)

// CreateBookingRequest là body của POST /bookings, ngày theo định dạng 2006-01-02
type CreateBookingRequest struct {
	RoomID          uint   `json:"roomId" binding:"required"`
	UserID          uint   `json:"userId"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	NumGuests       int    `json:"numGuests" binding:"required,min=1"`
	SpecialRequests string `json:"specialRequests"`
}

// TransitionRequest là body của PUT /bookings/:id/status
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// AvailabilityQuery là query string của GET /availability
type AvailabilityQuery struct {
	RoomID   uint   `form:"roomId" binding:"required"`
	CheckIn  string `form:"checkIn" binding:"required"`
	CheckOut string `form:"checkOut" binding:"required"`
}

// BookingRoomResponse là thông tin phòng rút gọn trong booking response
type BookingRoomResponse struct {
	ID         uint    `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	TypeName   string  `json:"typeName"`
	Price      float64 `json:"price"`
}

// BookingResponse là booking trả về cho client
type BookingResponse struct {
	ID              uint                `json:"id"`
	Code            string              `json:"code"`
	Room            BookingRoomResponse `json:"room"`
	UserID          uint                `json:"userId"`
	CheckInDate     string              `json:"checkInDate"`
	CheckOutDate    string              `json:"checkOutDate"`
	NumGuests       int                 `json:"numGuests"`
	Status          string              `json:"status"`
	BaseAmount      float64             `json:"baseAmount"`
	ServicesAmount  float64             `json:"servicesAmount"`
	TotalAmount     float64             `json:"totalAmount"`
	PaidAmount      float64             `json:"paidAmount"`
	Outstanding     float64             `json:"outstanding"`
	SpecialRequests string              `json:"specialRequests,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	CheckedInAt     *time.Time          `json:"checkedInAt,omitempty"`
	CheckedOutAt    *time.Time          `json:"checkedOutAt,omitempty"`
}

// ToBookingResponse chuyển model sang response
func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:   b.ID,
		Code: b.Code,
		Room: BookingRoomResponse{
			ID:         b.Room.RoomId,
			RoomNumber: b.Room.RoomNumber,
			TypeName:   b.Room.RoomType.Name,
			Price:      b.Room.RoomType.Price,
		},
		UserID:          b.UserID,
		CheckInDate:     b.CheckInDate.Format("2006-01-02"),
		CheckOutDate:    b.CheckOutDate.Format("2006-01-02"),
		NumGuests:       b.NumGuests,
		Status:          b.Status.String(),
		BaseAmount:      b.BaseAmount,
		ServicesAmount:  b.ServicesAmount,
		TotalAmount:     b.TotalAmount,
		PaidAmount:      b.PaidAmount,
		Outstanding:     b.Outstanding(),
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		CheckedInAt:     b.CheckedInAt,
		CheckedOutAt:    b.CheckedOutAt,
	}
}
