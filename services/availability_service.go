package services

import (
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"gorm.io/gorm"
)

// Availability reasons
const (
	ReasonBooked      = "booked"
	ReasonMaintenance = "maintenance"
)

// AvailabilityResult là kết quả kiểm tra phòng trống
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// occupyingStatuses là các trạng thái booking còn giữ phòng:
// Pending giữ mềm, Confirmed/CheckedIn giữ cứng. Cancelled/CheckedOut không chặn.
var occupyingStatuses = []constants.BookingStatus{
	constants.BookingStatusPending,
	constants.BookingStatusConfirmed,
	constants.BookingStatusCheckedIn,
}

// AvailabilityService kiểm tra phòng trống theo khoảng ngày.
// Đây là predicate overlap duy nhất của hệ thống, mọi đường tạo booking đều gọi vào đây.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// CheckAvailability kiểm tra phòng có trống trong [checkIn, checkOut) không.
// Chỉ đọc, không side effect, gọi đồng thời thoải mái.
func (s *AvailabilityService) CheckAvailability(roomID uint, checkIn, checkOut time.Time) (AvailabilityResult, error) {
	return s.checkTx(s.db, roomID, checkIn, checkOut)
}

// checkTx là biến thể chạy trong transaction, dùng để re-validate
// ngay trước khi insert booking (chống race giữa hai khách cùng đặt).
func (s *AvailabilityService) checkTx(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (AvailabilityResult, error) {
	checkIn = models.DateOnly(checkIn)
	checkOut = models.DateOnly(checkOut)

	if !checkIn.Before(checkOut) {
		return AvailabilityResult{}, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"check-out date must be after check-in date", apperrors.ErrInvalidDateRange)
	}

	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return AvailabilityResult{}, apperrors.ErrRoomNotFound
		}
		return AvailabilityResult{}, err
	}

	if room.Status == constants.RoomStatusMaintenance {
		return AvailabilityResult{Available: false, Reason: ReasonMaintenance}, nil
	}

	// Overlap nửa mở: [a0,a1) giao [b0,b1) khi a0 < b1 AND b0 < a1.
	// Trả phòng cùng ngày với nhận phòng kế tiếp không tính là trùng.
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", roomID, occupyingStatuses).
		Where("check_in_date < ? AND ? < check_out_date", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return AvailabilityResult{}, err
	}

	if count > 0 {
		return AvailabilityResult{Available: false, Reason: ReasonBooked}, nil
	}
	return AvailabilityResult{Available: true}, nil
}
