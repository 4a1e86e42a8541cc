package models

import (
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
)

// TransitionContext mang theo dữ liệu mà guard của từng chuyển trạng thái cần:
// số tiền còn nợ từ sổ thanh toán, thời điểm hiện tại và vai trò người thao tác.
type TransitionContext struct {
	Outstanding float64
	Now         time.Time
	ActorRole   constants.Role
}

// BookingState định nghĩa interface cho các trạng thái booking.
// Mọi thay đổi Status đều phải đi qua đây, không component nào ghi Status trực tiếp.
type BookingState interface {
	Confirm(b *Booking, ctx TransitionContext) error
	CheckIn(b *Booking, ctx TransitionContext) error
	CheckOut(b *Booking, ctx TransitionContext) error
	Cancel(b *Booking, ctx TransitionContext) error
	MarkNoShow(b *Booking, ctx TransitionContext) error
}

func invalidTransition(b *Booking, to constants.BookingStatus) error {
	return &apperrors.InvalidTransitionError{
		From: b.Status.String(),
		To:   to.String(),
	}
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(b *Booking, ctx TransitionContext) error {
	b.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) CheckIn(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusCheckedIn)
}

func (s *PendingState) CheckOut(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusCheckedOut)
}

func (s *PendingState) Cancel(b *Booking, ctx TransitionContext) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) MarkNoShow(b *Booking, ctx TransitionContext) error {
	return markNoShow(b, ctx)
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusConfirmed)
}

func (s *ConfirmedState) CheckIn(b *Booking, ctx TransitionContext) error {
	if ctx.Outstanding > 0 {
		return &apperrors.PaymentRequiredError{Outstanding: ctx.Outstanding}
	}
	if DateOnly(ctx.Now).Before(DateOnly(b.CheckInDate)) {
		return apperrors.ErrCheckInDateNotReached
	}
	now := ctx.Now
	b.Status = constants.BookingStatusCheckedIn
	b.CheckedInAt = &now
	return nil
}

func (s *ConfirmedState) CheckOut(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusCheckedOut)
}

func (s *ConfirmedState) Cancel(b *Booking, ctx TransitionContext) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) MarkNoShow(b *Booking, ctx TransitionContext) error {
	return markNoShow(b, ctx)
}

// CheckedInState trạng thái khách đã nhận phòng
type CheckedInState struct{}

func (s *CheckedInState) Confirm(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusConfirmed)
}

func (s *CheckedInState) CheckIn(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusCheckedIn)
}

func (s *CheckedInState) CheckOut(b *Booking, ctx TransitionContext) error {
	if ctx.Outstanding > 0 {
		return &apperrors.PaymentRequiredError{Outstanding: ctx.Outstanding}
	}
	now := ctx.Now
	b.Status = constants.BookingStatusCheckedOut
	b.CheckedOutAt = &now
	return nil
}

func (s *CheckedInState) Cancel(b *Booking, ctx TransitionContext) error {
	// Khách đã nhận phòng thì không hủy được nữa
	return invalidTransition(b, constants.BookingStatusCancelled)
}

func (s *CheckedInState) MarkNoShow(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusNoShow)
}

// terminalState dùng chung cho các trạng thái kết thúc
type terminalState struct{}

func (s *terminalState) Confirm(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusConfirmed)
}

func (s *terminalState) CheckIn(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusCheckedIn)
}

func (s *terminalState) CheckOut(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusCheckedOut)
}

func (s *terminalState) Cancel(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusCancelled)
}

func (s *terminalState) MarkNoShow(b *Booking, ctx TransitionContext) error {
	return invalidTransition(b, constants.BookingStatusNoShow)
}

// CheckedOutState trạng thái đã trả phòng
type CheckedOutState struct{ terminalState }

// CancelledState trạng thái đã hủy
type CancelledState struct{ terminalState }

// NoShowState trạng thái khách không đến
type NoShowState struct{ terminalState }

// markNoShow áp dụng guard chung cho Pending/Confirmed -> NoShow:
// chỉ nhân viên thao tác, đã quá ngày nhận phòng và chưa có check-in.
func markNoShow(b *Booking, ctx TransitionContext) error {
	if !ctx.ActorRole.IsStaff() {
		return apperrors.ErrUnauthorized
	}
	if !DateOnly(ctx.Now).After(DateOnly(b.CheckInDate)) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidTransition,
			"cannot mark no-show before the check-in date has passed", nil)
	}
	if b.CheckedInAt != nil {
		return apperrors.ErrCheckInAlreadyRecorded
	}
	b.Status = constants.BookingStatusNoShow
	return nil
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status constants.BookingStatus) BookingState {
	switch status {
	case constants.BookingStatusPending:
		return &PendingState{}
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCheckedIn:
		return &CheckedInState{}
	case constants.BookingStatusCheckedOut:
		return &CheckedOutState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	case constants.BookingStatusNoShow:
		return &NoShowState{}
	default:
		return &PendingState{}
	}
}

// ApplyTransition chuyển booking sang trạng thái đích qua state machine
func ApplyTransition(b *Booking, target constants.BookingStatus, ctx TransitionContext) error {
	state := GetBookingState(b.Status)
	switch target {
	case constants.BookingStatusConfirmed:
		return state.Confirm(b, ctx)
	case constants.BookingStatusCheckedIn:
		return state.CheckIn(b, ctx)
	case constants.BookingStatusCheckedOut:
		return state.CheckOut(b, ctx)
	case constants.BookingStatusCancelled:
		return state.Cancel(b, ctx)
	case constants.BookingStatusNoShow:
		return state.MarkNoShow(b, ctx)
	case constants.BookingStatusPending:
		return invalidTransition(b, constants.BookingStatusPending)
	default:
		return invalidTransition(b, target)
	}
}
