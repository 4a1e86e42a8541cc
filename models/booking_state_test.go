package models

import (
	"errors"
	"testing"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/constants"
	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/stretchr/testify/assert"
)

func sampleBooking(status constants.BookingStatus) *Booking {
	return &Booking{
		ID:           1,
		Code:         "SKN1756700000",
		RoomID:       10,
		UserID:       5,
		CheckInDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		NumGuests:    2,
		Status:       status,
		BaseAmount:   300,
		TotalAmount:  300,
	}
}

func staffCtx(outstanding float64, now time.Time) TransitionContext {
	return TransitionContext{Outstanding: outstanding, Now: now, ActorRole: constants.RoleStaff}
}

func TestApplyTransition_PendingToConfirmed(t *testing.T) {
	b := sampleBooking(constants.BookingStatusPending)

	err := ApplyTransition(b, constants.BookingStatusConfirmed, staffCtx(300, time.Now()))

	assert.NoError(t, err)
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
}

func TestApplyTransition_PendingToCancelled(t *testing.T) {
	b := sampleBooking(constants.BookingStatusPending)

	err := ApplyTransition(b, constants.BookingStatusCancelled, staffCtx(300, time.Now()))

	assert.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCancelled, b.Status)
}

func TestApplyTransition_PendingCannotCheckIn(t *testing.T) {
	b := sampleBooking(constants.BookingStatusPending)

	err := ApplyTransition(b, constants.BookingStatusCheckedIn, staffCtx(0, time.Now()))

	var invalid *apperrors.InvalidTransitionError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, constants.BookingStatusPending, b.Status)
}

func TestApplyTransition_CheckInBlockedByOutstanding(t *testing.T) {
	b := sampleBooking(constants.BookingStatusConfirmed)
	now := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	err := ApplyTransition(b, constants.BookingStatusCheckedIn, staffCtx(120.50, now))

	var paymentRequired *apperrors.PaymentRequiredError
	assert.True(t, errors.As(err, &paymentRequired))
	assert.Equal(t, 120.50, paymentRequired.Outstanding)
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
	assert.Nil(t, b.CheckedInAt)
}

func TestApplyTransition_CheckInBlockedBeforeDate(t *testing.T) {
	b := sampleBooking(constants.BookingStatusConfirmed)
	now := time.Date(2026, 9, 9, 23, 59, 0, 0, time.UTC)

	err := ApplyTransition(b, constants.BookingStatusCheckedIn, staffCtx(0, now))

	assert.ErrorIs(t, err, apperrors.ErrCheckInDateNotReached)
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
}

func TestApplyTransition_CheckInOnArrivalDay(t *testing.T) {
	b := sampleBooking(constants.BookingStatusConfirmed)
	now := time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC)

	err := ApplyTransition(b, constants.BookingStatusCheckedIn, staffCtx(0, now))

	assert.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCheckedIn, b.Status)
	if assert.NotNil(t, b.CheckedInAt) {
		assert.Equal(t, now, *b.CheckedInAt)
	}
}

func TestApplyTransition_CheckOutBlockedByOutstanding(t *testing.T) {
	b := sampleBooking(constants.BookingStatusCheckedIn)

	err := ApplyTransition(b, constants.BookingStatusCheckedOut, staffCtx(45, time.Now()))

	var paymentRequired *apperrors.PaymentRequiredError
	assert.True(t, errors.As(err, &paymentRequired))
	assert.Equal(t, constants.BookingStatusCheckedIn, b.Status)
	assert.Nil(t, b.CheckedOutAt)
}

func TestApplyTransition_CheckOutSettled(t *testing.T) {
	b := sampleBooking(constants.BookingStatusCheckedIn)
	now := time.Date(2026, 9, 13, 11, 0, 0, 0, time.UTC)

	err := ApplyTransition(b, constants.BookingStatusCheckedOut, staffCtx(0, now))

	assert.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCheckedOut, b.Status)
	if assert.NotNil(t, b.CheckedOutAt) {
		assert.Equal(t, now, *b.CheckedOutAt)
	}
}

func TestApplyTransition_CheckedInCannotCancel(t *testing.T) {
	b := sampleBooking(constants.BookingStatusCheckedIn)

	err := ApplyTransition(b, constants.BookingStatusCancelled, staffCtx(0, time.Now()))

	var invalid *apperrors.InvalidTransitionError
	assert.True(t, errors.As(err, &invalid))
	assert.Equal(t, constants.BookingStatusCheckedIn, b.Status)
}

func TestApplyTransition_TerminalStatesRejectEverything(t *testing.T) {
	terminals := []constants.BookingStatus{
		constants.BookingStatusCheckedOut,
		constants.BookingStatusCancelled,
		constants.BookingStatusNoShow,
	}
	targets := []constants.BookingStatus{
		constants.BookingStatusPending,
		constants.BookingStatusConfirmed,
		constants.BookingStatusCheckedIn,
		constants.BookingStatusCheckedOut,
		constants.BookingStatusCancelled,
		constants.BookingStatusNoShow,
	}

	ctx := staffCtx(0, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))
	for _, from := range terminals {
		for _, to := range targets {
			b := sampleBooking(from)
			err := ApplyTransition(b, to, ctx)

			var invalid *apperrors.InvalidTransitionError
			assert.True(t, errors.As(err, &invalid), "from %s to %s should be rejected", from, to)
			assert.Equal(t, from, b.Status, "status must not change on rejected transition")
		}
	}
}

func TestApplyTransition_NoShowRequiresStaff(t *testing.T) {
	b := sampleBooking(constants.BookingStatusConfirmed)
	ctx := TransitionContext{
		Outstanding: 300,
		Now:         time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		ActorRole:   constants.RoleGuest,
	}

	err := ApplyTransition(b, constants.BookingStatusNoShow, ctx)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
}

func TestApplyTransition_NoShowBeforeArrivalDayRejected(t *testing.T) {
	b := sampleBooking(constants.BookingStatusConfirmed)
	// Đúng ngày nhận phòng thì vẫn chưa được đánh no-show
	now := time.Date(2026, 9, 10, 23, 0, 0, 0, time.UTC)

	err := ApplyTransition(b, constants.BookingStatusNoShow, staffCtx(300, now))

	assert.Error(t, err)
	assert.Equal(t, constants.BookingStatusConfirmed, b.Status)
}

func TestApplyTransition_NoShowAfterArrivalDay(t *testing.T) {
	for _, from := range []constants.BookingStatus{constants.BookingStatusPending, constants.BookingStatusConfirmed} {
		b := sampleBooking(from)
		now := time.Date(2026, 9, 11, 9, 0, 0, 0, time.UTC)

		err := ApplyTransition(b, constants.BookingStatusNoShow, staffCtx(300, now))

		assert.NoError(t, err, "no-show from %s", from)
		assert.Equal(t, constants.BookingStatusNoShow, b.Status)
	}
}

func TestApplyTransition_NoShowRejectedWhenCheckedInRecorded(t *testing.T) {
	b := sampleBooking(constants.BookingStatusConfirmed)
	checkedIn := time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC)
	b.CheckedInAt = &checkedIn

	err := ApplyTransition(b, constants.BookingStatusNoShow,
		staffCtx(0, time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)))

	assert.ErrorIs(t, err, apperrors.ErrCheckInAlreadyRecorded)
}

func TestApplyTransition_PendingNeverATarget(t *testing.T) {
	b := sampleBooking(constants.BookingStatusConfirmed)

	err := ApplyTransition(b, constants.BookingStatusPending, staffCtx(0, time.Now()))

	var invalid *apperrors.InvalidTransitionError
	assert.True(t, errors.As(err, &invalid))
}
