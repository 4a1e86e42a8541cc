package services

import (
	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/services/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Ledger là ảnh chụp tài chính của một booking tại một thời điểm
type Ledger struct {
	BaseAmount     float64 `json:"baseAmount"`
	ServicesAmount float64 `json:"servicesAmount"`
	TotalAmount    float64 `json:"totalAmount"`
	PaidAmount     float64 `json:"paidAmount"`
	Outstanding    float64 `json:"outstanding"`
}

// ComputeLedger tính sổ thanh toán từ giá phòng, các dòng dịch vụ và các khoản
// thanh toán. Đây là phép tính duy nhất cho mọi đường ghi, không chỗ nào tự cộng riêng.
func ComputeLedger(baseAmount float64, usages []models.ServiceUsage, payments []models.Payment) Ledger {
	var services float64
	for _, u := range usages {
		services += u.TotalPrice
	}

	var paid float64
	for _, p := range payments {
		if p.Status == constants.PaymentStatusCompleted {
			paid += p.Amount
		}
	}

	total := baseAmount + services
	outstanding := total - paid
	if outstanding < 0 {
		outstanding = 0
	}

	return Ledger{
		BaseAmount:     baseAmount,
		ServicesAmount: services,
		TotalAmount:    total,
		PaidAmount:     paid,
		Outstanding:    outstanding,
	}
}

// LedgerService đọc và tính lại sổ thanh toán của booking
type LedgerService struct {
	db  *gorm.DB
	log logger.Logger
}

func NewLedgerService(db *gorm.DB, log logger.Logger) *LedgerService {
	return &LedgerService{db: db, log: log}
}

// GetLedger trả về sổ thanh toán hiện tại của booking
func (s *LedgerService) GetLedger(bookingID uint) (Ledger, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return Ledger{}, apperrors.ErrBookingNotFound
		}
		return Ledger{}, err
	}
	return s.computeForBooking(s.db, &booking)
}

// computeForBooking tính sổ từ các bảng con, dùng chung cho đường đọc và đường ghi
func (s *LedgerService) computeForBooking(tx *gorm.DB, booking *models.Booking) (Ledger, error) {
	var usages []models.ServiceUsage
	if err := tx.Where("booking_id = ?", booking.ID).Find(&usages).Error; err != nil {
		return Ledger{}, err
	}

	var payments []models.Payment
	if err := tx.Where("booking_id = ?", booking.ID).Find(&payments).Error; err != nil {
		return Ledger{}, err
	}

	return ComputeLedger(booking.BaseAmount, usages, payments), nil
}

// recomputeTx tính lại sổ trong transaction đang giữ lock trên booking
// và ghi các trường tiền tệ xuống row. Gọi sau mỗi mutation dịch vụ/thanh toán.
func (s *LedgerService) recomputeTx(tx *gorm.DB, booking *models.Booking) (Ledger, error) {
	ledger, err := s.computeForBooking(tx, booking)
	if err != nil {
		return Ledger{}, err
	}

	if ledger.ServicesAmount < 0 {
		// Floor phòng hờ: nếu xảy ra tức là có bug ở đường ghi dịch vụ
		s.log.Error("invariant violation: services amount below zero for booking %d (%.2f), flooring to 0",
			booking.ID, ledger.ServicesAmount)
		ledger.ServicesAmount = 0
		ledger.TotalAmount = ledger.BaseAmount
	}

	booking.ServicesAmount = ledger.ServicesAmount
	booking.TotalAmount = ledger.TotalAmount
	booking.PaidAmount = ledger.PaidAmount

	if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).Updates(map[string]interface{}{
		"services_amount": ledger.ServicesAmount,
		"total_amount":    ledger.TotalAmount,
		"paid_amount":     ledger.PaidAmount,
	}).Error; err != nil {
		return Ledger{}, err
	}

	return ledger, nil
}

// lockBookingTx lấy booking kèm row-level lock để serialize các mutation
// trên cùng một booking (hai thanh toán đồng thời không cùng qua được guard).
func lockBookingTx(tx *gorm.DB, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}
