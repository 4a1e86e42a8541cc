package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type RoomType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"` // Giá mỗi đêm
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Room struct {
	RoomId     uint            `json:"id" gorm:"primaryKey"`
	BranchID   uint            `json:"branchId" gorm:"index"`
	RoomNumber string          `json:"roomNumber"`
	RoomTypeID uint            `json:"roomTypeId"`
	RoomType   RoomType        `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Status     int             `json:"status" gorm:"default:1"`
	Avatar     string          `json:"avatar"`
	Img        json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings   []Booking       `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 4 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 4", r.Status)
	}
	return nil
}
