package services

import (
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/services/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateBookingInput là dữ liệu đã validate để tạo booking
type CreateBookingInput struct {
	RoomID          uint
	UserID          uint
	CheckIn         time.Time
	CheckOut        time.Time
	NumGuests       int
	SpecialRequests string
}

// BookingService điều phối vòng đời booking: tạo mới và chuyển trạng thái.
// Mọi rule nằm ở đây, controller chỉ parse request và map lỗi.
type BookingService struct {
	db           *gorm.DB
	availability *AvailabilityService
	ledger       *LedgerService
	notifier     Notifier
	log          logger.Logger
}

func NewBookingService(db *gorm.DB, availability *AvailabilityService, ledger *LedgerService, notifier Notifier, log logger.Logger) *BookingService {
	return &BookingService{
		db:           db,
		availability: availability,
		ledger:       ledger,
		notifier:     notifier,
		log:          log,
	}
}

// CreateBooking tạo booking mới ở trạng thái Pending.
// Kiểm tra phòng trống được chạy lại bên trong transaction sau khi giữ lock
// trên row phòng, nên hai request cùng đặt một phòng chỉ một bên thắng.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	checkIn := models.DateOnly(input.CheckIn)
	checkOut := models.DateOnly(input.CheckOut)

	if !checkIn.Before(checkOut) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"check-out date must be after check-in date", apperrors.ErrInvalidDateRange)
	}
	if checkIn.Before(models.DateOnly(time.Now())) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"check-in date cannot be in the past", nil)
	}
	if input.NumGuests < 1 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"guest count must be at least 1", nil)
	}

	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Lock row phòng để serialize các lượt tạo booking trên cùng một phòng
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("RoomType").
			First(&room, input.RoomID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrRoomNotFound
			}
			return err
		}

		if input.NumGuests > room.RoomType.Capacity {
			return apperrors.NewAppError(apperrors.ErrCodeValidation,
				"guest count exceeds room capacity", nil)
		}

		// Re-validate phòng trống trong cùng transaction với insert
		result, err := s.availability.checkTx(tx, input.RoomID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if !result.Available {
			return apperrors.NewAppError(apperrors.ErrCodeRoomNotAvailable,
				"room is no longer available: "+result.Reason, apperrors.ErrRoomNoLongerAvailable)
		}

		nights := int(checkOut.Sub(checkIn).Hours() / 24)
		baseAmount := room.RoomType.Price * float64(nights)

		booking = &models.Booking{
			RoomID:          input.RoomID,
			UserID:          input.UserID,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumGuests:       input.NumGuests,
			Status:          constants.BookingStatusPending,
			BaseAmount:      baseAmount,
			ServicesAmount:  0,
			TotalAmount:     baseAmount,
			PaidAmount:      0,
			SpecialRequests: input.SpecialRequests,
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	// Side effect sau commit, không giữ lock qua call ngoài
	s.notifier.BookingCreated(booking)
	return booking, nil
}

// TransitionStatus chuyển booking sang trạng thái đích qua state machine.
// Outstanding được tính lại từ bảng con ngay trong transaction, không dùng giá trị cũ.
func (s *BookingService) TransitionStatus(bookingID uint, target constants.BookingStatus, actorRole constants.Role) (*models.Booking, error) {
	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBookingTx(tx, bookingID)
		if err != nil {
			return err
		}

		ledger, err := s.ledger.computeForBooking(tx, booking)
		if err != nil {
			return err
		}

		ctx := models.TransitionContext{
			Outstanding: ledger.Outstanding,
			Now:         time.Now(),
			ActorRole:   actorRole,
		}
		if err := models.ApplyTransition(booking, target, ctx); err != nil {
			return err
		}

		return tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(map[string]interface{}{
			"status":         booking.Status,
			"checked_in_at":  booking.CheckedInAt,
			"checked_out_at": booking.CheckedOutAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingStatusChanged(booking)
	return booking, nil
}

// GetBooking lấy booking kèm phòng, dịch vụ và thanh toán
func (s *BookingService) GetBooking(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Room").Preload("Room.RoomType").
		Preload("ServiceUsages").Preload("ServiceUsages.Service").
		Preload("Payments").
		First(&booking, bookingID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}
