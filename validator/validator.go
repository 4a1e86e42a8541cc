package validator

import (
	"regexp"
	"time"

	"github.com/BimsaraU/SkyNest-sub000/errors"
)

const dateLayout = "2006-01-02"

// ParseDate parse chuỗi ngày theo định dạng 2006-01-02
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"invalid date, expected format "+dateLayout, err)
	}
	return parsed, nil
}

// ValidateDateRange kiểm tra khoảng ngày nhận/trả phòng
func ValidateDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	checkIn, err := ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err := ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !checkIn.Before(checkOut) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation,
			"check-out date must be after check-in date", errors.ErrInvalidDateRange)
	}

	return checkIn, checkOut, nil
}

// ValidateAmount kiểm tra số tiền dương
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount,
			"amount must be positive", errors.ErrInvalidAmount)
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "invalid email", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.NewAppError(errors.ErrCodeValidation,
			"password must be at least 8 characters", nil)
	}
	return nil
}
