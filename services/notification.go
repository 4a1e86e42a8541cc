package services

import (
	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/BimsaraU/SkyNest-sub000/services/logger"
)

// Notifier là hook cho các side effect sau commit (email xác nhận, hóa đơn PDF...).
// Luôn gọi sau khi transaction đã commit, không bao giờ bên trong transaction,
// lỗi chỉ log chứ không fail nghiệp vụ.
type Notifier interface {
	BookingCreated(booking *models.Booking)
	BookingStatusChanged(booking *models.Booking)
	PaymentRecorded(booking *models.Booking, payment *models.Payment)
}

// LogNotifier implement Notifier bằng cách ghi log, thay cho hệ thống email/PDF bên ngoài
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) BookingCreated(booking *models.Booking) {
	n.log.Info("booking %s created for room %d, %s -> %s, total %.2f",
		booking.Code, booking.RoomID,
		booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"),
		booking.TotalAmount)
}

func (n *LogNotifier) BookingStatusChanged(booking *models.Booking) {
	n.log.Info("booking %s moved to %s", booking.Code, booking.Status)
}

func (n *LogNotifier) PaymentRecorded(booking *models.Booking, payment *models.Payment) {
	n.log.Info("payment %.2f (%s) recorded for booking %s, paid %.2f/%.2f",
		payment.Amount, payment.Method, booking.Code, booking.PaidAmount, booking.TotalAmount)
}
