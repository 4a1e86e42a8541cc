package services

import (
	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/services/logger"
	"gorm.io/gorm"
)

// ServiceUsageService cộng/trừ các dòng dịch vụ vào booking đang mở.
// Mỗi mutation ghi dòng dịch vụ và tính lại tiền booking trong cùng transaction.
type ServiceUsageService struct {
	db     *gorm.DB
	ledger *LedgerService
	log    logger.Logger
}

func NewServiceUsageService(db *gorm.DB, ledger *LedgerService, log logger.Logger) *ServiceUsageService {
	return &ServiceUsageService{db: db, ledger: ledger, log: log}
}

// bookingOpenForServices kiểm tra booking còn nhận thay đổi dịch vụ không
func bookingOpenForServices(status constants.BookingStatus) bool {
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn:
		return true
	}
	return false
}

// AddService thêm một dịch vụ vào booking, chốt đơn giá tại thời điểm thêm
func (s *ServiceUsageService) AddService(bookingID, serviceID uint, quantity int, notes string) (*models.ServiceUsage, error) {
	if quantity < 1 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"quantity must be at least 1", nil)
	}

	var usage *models.ServiceUsage
	err := s.db.Transaction(func(tx *gorm.DB) error {
		booking, err := lockBookingTx(tx, bookingID)
		if err != nil {
			return err
		}

		if !bookingOpenForServices(booking.Status) {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition,
				"cannot add services to a booking in status "+booking.Status.String(),
				apperrors.ErrBookingNotModifiable)
		}

		var service models.Service
		if err := tx.First(&service, serviceID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrServiceNotFound
			}
			return err
		}
		if service.Status != constants.ServiceStatusActive {
			return apperrors.ErrServiceInactive
		}

		// Đơn giá snapshot: catalog đổi giá về sau không ảnh hưởng dòng đã ghi
		usage = &models.ServiceUsage{
			BookingID:  bookingID,
			ServiceID:  serviceID,
			Quantity:   quantity,
			UnitPrice:  service.Price,
			TotalPrice: service.Price * float64(quantity),
			Notes:      notes,
		}
		if err := tx.Create(usage).Error; err != nil {
			return err
		}

		_, err = s.ledger.recomputeTx(tx, booking)
		return err
	})
	if err != nil {
		return nil, err
	}
	return usage, nil
}

// RemoveService gỡ một dòng dịch vụ khỏi booking chưa trả phòng
func (s *ServiceUsageService) RemoveService(usageID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var usage models.ServiceUsage
		if err := tx.First(&usage, usageID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrServiceUsageNotFound
			}
			return err
		}

		booking, err := lockBookingTx(tx, usage.BookingID)
		if err != nil {
			return err
		}

		if !bookingOpenForServices(booking.Status) {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition,
				"cannot remove services from a booking in status "+booking.Status.String(),
				apperrors.ErrBookingNotModifiable)
		}

		if err := tx.Delete(&usage).Error; err != nil {
			return err
		}

		_, err = s.ledger.recomputeTx(tx, booking)
		return err
	})
}

// ListServiceUsages liệt kê các dòng dịch vụ của booking
func (s *ServiceUsageService) ListServiceUsages(bookingID uint) ([]models.ServiceUsage, error) {
	var usages []models.ServiceUsage
	err := s.db.Preload("Service").Where("booking_id = ?", bookingID).
		Order("created_at asc").Find(&usages).Error
	return usages, err
}
