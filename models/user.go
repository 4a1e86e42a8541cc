package models

import (
	"fmt"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string         `gorm:"default:New User" json:"name"`
	Email       string         `gorm:"unique" json:"email" validate:"required,email"`
	Password    string         `json:"-" validate:"required,min=8"`
	PhoneNumber string         `gorm:"unique;type:varchar(15);not null" json:"phoneNumber" validate:"required,min=9,max=15"`
	Role        constants.Role `gorm:"default:0" json:"role"`
	Status      int            `gorm:"default:1" json:"status"`
	BranchIDs   pq.Int64Array  `json:"branchIds" gorm:"type:integer[]"` // Chi nhánh nhân viên được gán
	Bookings    []Booking      `json:"-" gorm:"foreignKey:UserID"`
}

// Validate kiểm tra dữ liệu user trước khi lưu
func (u *User) Validate() error {
	validate := validator.New()

	if err := validate.Struct(u); err != nil {
		return err
	}

	if !u.Role.Valid() {
		return fmt.Errorf("role %d không hợp lệ", u.Role)
	}
	return nil
}
