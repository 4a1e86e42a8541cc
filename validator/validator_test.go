package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateDateRange(t *testing.T) {
	checkIn, checkOut, err := ValidateDateRange("2026-09-10", "2026-09-13")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), checkIn)
	assert.Equal(t, time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC), checkOut)
}

func TestValidateDateRange_CheckOutNotAfterCheckIn(t *testing.T) {
	_, _, err := ValidateDateRange("2026-09-13", "2026-09-10")
	assert.Error(t, err)

	// Cùng ngày cũng không hợp lệ, tối thiểu một đêm
	_, _, err = ValidateDateRange("2026-09-10", "2026-09-10")
	assert.Error(t, err)
}

func TestValidateDateRange_BadFormat(t *testing.T) {
	_, _, err := ValidateDateRange("10/09/2026", "2026-09-13")
	assert.Error(t, err)

	_, _, err = ValidateDateRange("2026-09-10", "not-a-date")
	assert.Error(t, err)
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(0.01))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-10))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("guest@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@tld"))
}
