package constants

// BookingStatus định nghĩa trạng thái vòng đời của booking
type BookingStatus int

const (
	BookingStatusPending BookingStatus = iota
	BookingStatusConfirmed
	BookingStatusCheckedIn
	BookingStatusCheckedOut
	BookingStatusCancelled
	BookingStatusNoShow
)

// IsTerminal kiểm tra trạng thái kết thúc, không thể chuyển tiếp
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCheckedOut, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// IsOccupying kiểm tra trạng thái còn giữ phòng khi xét phòng trống
func (s BookingStatus) IsOccupying() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn:
		return true
	}
	return false
}

func (s BookingStatus) String() string {
	switch s {
	case BookingStatusPending:
		return "pending"
	case BookingStatusConfirmed:
		return "confirmed"
	case BookingStatusCheckedIn:
		return "checked_in"
	case BookingStatusCheckedOut:
		return "checked_out"
	case BookingStatusCancelled:
		return "cancelled"
	case BookingStatusNoShow:
		return "no_show"
	}
	return "unknown"
}

// ParseBookingStatus chuyển chuỗi từ request thành BookingStatus
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch s {
	case "pending":
		return BookingStatusPending, true
	case "confirmed":
		return BookingStatusConfirmed, true
	case "checked_in":
		return BookingStatusCheckedIn, true
	case "checked_out":
		return BookingStatusCheckedOut, true
	case "cancelled":
		return BookingStatusCancelled, true
	case "no_show":
		return BookingStatusNoShow, true
	}
	return 0, false
}

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusMaintenance = 3
)

// Service status
const (
	ServiceStatusActive   = 1
	ServiceStatusInactive = 0
)

// PaymentMethod định nghĩa phương thức thanh toán
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// Valid kiểm tra phương thức thanh toán có được hỗ trợ không
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// PaymentType định nghĩa loại thanh toán
type PaymentType string

const (
	PaymentTypeFull           PaymentType = "full"
	PaymentTypePartial        PaymentType = "partial"
	PaymentTypeReservationFee PaymentType = "reservation_fee"
	PaymentTypeServicePayment PaymentType = "service_payment"
)

// Valid kiểm tra loại thanh toán có hợp lệ không
func (t PaymentType) Valid() bool {
	switch t {
	case PaymentTypeFull, PaymentTypePartial, PaymentTypeReservationFee, PaymentTypeServicePayment:
		return true
	}
	return false
}

// Payment status
const (
	PaymentStatusPending   = 0
	PaymentStatusCompleted = 1
)
