package controllers

import (
	"errors"
	"net/http"

	apperrors "github.com/BimsaraU/SkyNest-sub000/errors"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/gin-gonic/gin"
)

// handleServiceError map lỗi nghiệp vụ từ service sang HTTP response.
// Lỗi hạ tầng (mất kết nối DB...) rơi xuống ServerError để caller phân biệt
// "sửa request" với "thử lại sau".
func handleServiceError(c *gin.Context, err error) {
	// Các lỗi mang dữ liệu đi kèm xét trước
	var paymentRequired *apperrors.PaymentRequiredError
	if errors.As(err, &paymentRequired) {
		response.ErrorWithData(c, http.StatusPaymentRequired, err.Error(), gin.H{
			"outstanding": paymentRequired.Outstanding,
		})
		return
	}

	var invalidTransition *apperrors.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		response.Conflict(c, err.Error())
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrRoomNotFound),
		errors.Is(err, apperrors.ErrServiceNotFound),
		errors.Is(err, apperrors.ErrServiceUsageNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		response.NotFound(c)
		return
	case errors.Is(err, apperrors.ErrRoomNoLongerAvailable),
		errors.Is(err, apperrors.ErrOverpayment):
		// Vi phạm phát hiện lúc commit: client nên đọc lại trạng thái rồi thử lại
		response.Conflict(c, err.Error())
		return
	case errors.Is(err, apperrors.ErrServiceInactive):
		response.BadRequest(c, err.Error())
		return
	case errors.Is(err, apperrors.ErrCheckInDateNotReached),
		errors.Is(err, apperrors.ErrCheckInAlreadyRecorded),
		errors.Is(err, apperrors.ErrBookingNotModifiable):
		response.Conflict(c, err.Error())
		return
	case errors.Is(err, apperrors.ErrInvalidPassword):
		response.Unauthorized(c)
		return
	case errors.Is(err, apperrors.ErrUnauthorized):
		response.Forbidden(c)
		return
	}

	if appErr := apperrors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case apperrors.ErrCodeValidation, apperrors.ErrCodeInvalidFormat,
			apperrors.ErrCodeRequiredField, apperrors.ErrCodeInvalidAmount:
			response.BadRequest(c, appErr.Message)
			return
		case apperrors.ErrCodeInvalidTransition:
			response.Conflict(c, appErr.Message)
			return
		case apperrors.ErrCodeRoomNotAvailable, apperrors.ErrCodeOverpayment:
			response.Conflict(c, appErr.Message)
			return
		case apperrors.ErrCodeUnauthorized, apperrors.ErrCodeInvalidToken:
			response.Unauthorized(c)
			return
		case apperrors.ErrCodeForbidden, apperrors.ErrCodeInvalidRole:
			response.Forbidden(c)
			return
		case apperrors.ErrCodeDBNotFound:
			response.NotFound(c)
			return
		}
	}

	response.ServerError(c)
}
