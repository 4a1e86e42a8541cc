package models

import (
	"fmt"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	"gorm.io/gorm"
)

type Booking struct {
	ID              uint                    `json:"id" gorm:"primaryKey"`
	Code            string                  `json:"code" gorm:"unique;size:20"` // Mã booking duy nhất, hiển thị cho khách
	RoomID          uint                    `json:"roomId" gorm:"index"`
	Room            Room                    `json:"room" gorm:"foreignKey:RoomID"`
	UserID          uint                    `json:"userId" gorm:"index"`
	User            User                    `json:"user" gorm:"foreignKey:UserID"`
	CheckInDate     time.Time               `json:"checkInDate"`
	CheckOutDate    time.Time               `json:"checkOutDate"`
	NumGuests       int                     `json:"numGuests"`
	Status          constants.BookingStatus `json:"status" gorm:"index"`
	BaseAmount      float64                 `json:"baseAmount"`     // Giá phòng theo số đêm, chốt lúc tạo booking
	ServicesAmount  float64                 `json:"servicesAmount"` // Tổng tiền dịch vụ đã cộng dồn
	TotalAmount     float64                 `json:"totalAmount"`    // BaseAmount + ServicesAmount
	PaidAmount      float64                 `json:"paidAmount"`     // Tổng tiền đã thanh toán (completed)
	SpecialRequests string                  `json:"specialRequests,omitempty"`
	CreatedAt       time.Time               `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time               `gorm:"autoUpdateTime" json:"updatedAt"`
	CheckedInAt     *time.Time              `json:"checkedInAt,omitempty"`
	CheckedOutAt    *time.Time              `json:"checkedOutAt,omitempty"`
	ServiceUsages   []ServiceUsage          `json:"serviceUsages,omitempty" gorm:"foreignKey:BookingID"`
	Payments        []Payment               `json:"payments,omitempty" gorm:"foreignKey:BookingID"`
}

// BeforeCreate sinh mã booking duy nhất trước khi lưu
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.Code == "" {
		b.Code = fmt.Sprintf("SKN%d", time.Now().UnixNano()/1e3)
	}

	var count int64
	if err := tx.Model(&Booking{}).Where("code = ?", b.Code).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("booking code %s already exists, please retry", b.Code)
	}
	return nil
}

// Outstanding tính số tiền còn phải thanh toán, không bao giờ âm
func (b *Booking) Outstanding() float64 {
	outstanding := b.TotalAmount - b.PaidAmount
	if outstanding < 0 {
		return 0
	}
	return outstanding
}

// Nights tính số đêm của booking
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// DateOnly cắt phần giờ, chỉ giữ lại ngày theo UTC
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RangesOverlap kiểm tra hai khoảng ngày nửa mở [a0,a1) và [b0,b1) có giao nhau không.
// Ngày trả phòng trùng ngày nhận phòng kế tiếp không tính là trùng.
func RangesOverlap(a0, a1, b0, b1 time.Time) bool {
	return a0.Before(b1) && b0.Before(a1)
}
