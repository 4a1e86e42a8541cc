package services

import (
	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/services/logger"
	"gorm.io/gorm"
)

// RecordPaymentInput là dữ liệu ghi nhận một khoản thanh toán
type RecordPaymentInput struct {
	BookingID     uint
	Amount        float64
	Method        constants.PaymentMethod
	Type          constants.PaymentType // rỗng thì suy ra full/partial theo số còn nợ
	TransactionID string
}

// PaymentService ghi nhận thanh toán cho booking.
// Guard "amount ≤ outstanding" chạy dưới lock của row booking, tính từ dữ liệu
// mới nhất trong transaction chứ không từ lần đọc trước đó.
type PaymentService struct {
	db       *gorm.DB
	ledger   *LedgerService
	notifier Notifier
	log      logger.Logger
}

func NewPaymentService(db *gorm.DB, ledger *LedgerService, notifier Notifier, log logger.Logger) *PaymentService {
	return &PaymentService{db: db, ledger: ledger, notifier: notifier, log: log}
}

// RecordPayment ghi một khoản thanh toán, từ chối overpay thay vì cắt bớt
func (s *PaymentService) RecordPayment(input RecordPaymentInput) (*models.Payment, error) {
	if input.Amount <= 0 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidAmount,
			"payment amount must be positive", apperrors.ErrInvalidAmount)
	}
	if !input.Method.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"unsupported payment method", nil)
	}
	if input.Type != "" && !input.Type.Valid() {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
			"invalid payment type", nil)
	}

	var payment *models.Payment
	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		booking, err = lockBookingTx(tx, input.BookingID)
		if err != nil {
			return err
		}

		ledger, err := s.ledger.computeForBooking(tx, booking)
		if err != nil {
			return err
		}

		if input.Amount > ledger.Outstanding {
			return apperrors.NewAppError(apperrors.ErrCodeOverpayment,
				"payment would exceed the outstanding amount", apperrors.ErrOverpayment)
		}

		paymentType := input.Type
		if paymentType == "" {
			if input.Amount == ledger.Outstanding {
				paymentType = constants.PaymentTypeFull
			} else {
				paymentType = constants.PaymentTypePartial
			}
		}

		payment = &models.Payment{
			BookingID:     input.BookingID,
			Amount:        input.Amount,
			Method:        input.Method,
			Type:          paymentType,
			Status:        constants.PaymentStatusCompleted,
			TransactionID: input.TransactionID,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		_, err = s.ledger.recomputeTx(tx, booking)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PaymentRecorded(booking, payment)
	return payment, nil
}

// ListPayments liệt kê các khoản thanh toán của booking
func (s *PaymentService) ListPayments(bookingID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.Where("booking_id = ?", bookingID).Order("created_at asc").Find(&payments).Error
	return payments, err
}
