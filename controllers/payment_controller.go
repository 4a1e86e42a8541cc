package controllers

import (
	"github.com/BimsaraU/SkyNest-sub000/constants"
	"github.com/BimsaraU/SkyNest-sub000/dto"
	"github.com/BimsaraU/SkyNest-sub000/response"
	"github.com/BimsaraU/SkyNest-sub000/services"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	paymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// RecordPayment ghi nhận một khoản thanh toán cho booking
func (ctl *PaymentController) RecordPayment(c *gin.Context) {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var request dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := ctl.paymentService.RecordPayment(services.RecordPaymentInput{
		BookingID:     bookingID,
		Amount:        request.Amount,
		Method:        constants.PaymentMethod(request.Method),
		Type:          constants.PaymentType(request.Type),
		TransactionID: request.TransactionID,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, dto.ToPaymentResponse(payment))
}

// ListPayments liệt kê các khoản thanh toán của booking
func (ctl *PaymentController) ListPayments(c *gin.Context) {
	bookingID, err := parseIDParam(c, "id")
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	payments, err := ctl.paymentService.ListPayments(bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	paymentResponses := make([]dto.PaymentResponse, 0, len(payments))
	for i := range payments {
		paymentResponses = append(paymentResponses, dto.ToPaymentResponse(&payments[i]))
	}

	response.Success(c, paymentResponses)
}
