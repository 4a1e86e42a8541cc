package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Booking errors
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodePaymentRequired   ErrorCode = "PAYMENT_REQUIRED"
	ErrCodeRoomNotAvailable  ErrorCode = "ROOM_NOT_AVAILABLE"

	// Payment errors
	ErrCodeOverpayment ErrorCode = "OVERPAYMENT_REJECTED"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error, trả về nil nếu không phải
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// PaymentRequiredError chặn check-in/check-out khi còn nợ,
// mang theo số tiền còn lại để caller điều hướng sang thanh toán.
type PaymentRequiredError struct {
	Outstanding float64
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("payment required: outstanding amount %.2f", e.Outstanding)
}

// InvalidTransitionError mô tả một chuyển trạng thái không hợp lệ
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

var (
	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrRoomNoLongerAvailable  = errors.New("room is no longer available for the requested dates")
	ErrBookingNotModifiable   = errors.New("booking can no longer be modified")
	ErrCheckInDateNotReached  = errors.New("check-in date has not been reached")
	ErrCheckInAlreadyRecorded = errors.New("booking already has a check-in recorded")

	// Room errors
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomUnderMaintenance = errors.New("room is under maintenance")

	// Service errors
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceInactive      = errors.New("service is inactive")
	ErrServiceUsageNotFound = errors.New("service usage entry not found")

	// Payment errors
	ErrInvalidAmount = errors.New("invalid payment amount")
	ErrOverpayment   = errors.New("payment exceeds outstanding amount")

	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthorized    = errors.New("unauthorized")

	// Validation errors
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidDateRange = errors.New("check-out date must be after check-in date")
)
