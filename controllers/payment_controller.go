package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

// PaymentController nhận callback xác nhận thanh toán từ cổng thanh toán
type PaymentController struct {
	paymentService *services.PaymentService
}

func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// ConfirmPayment xác nhận thanh toán. Chữ ký HMAC nằm trong header
// X-Signature. Lỗi chữ ký và lỗi hết hạn trả về cùng một thông điệp
// chung, không tiết lộ lý do từ chối cho phía gọi.
func (ctl *PaymentController) ConfirmPayment(c *gin.Context) {
	signature := c.GetHeader("X-Signature")
	if signature == "" {
		response.BadRequest(c, "Yêu cầu thanh toán không hợp lệ")
		return
	}

	var payload dto.PaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	invoice, err := ctl.paymentService.ConfirmPayment(&payload, signature)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeStaleRequest) || errors.HasCode(err, errors.ErrCodeInvalidSignature) {
			response.BadRequest(c, "Yêu cầu thanh toán không hợp lệ")
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, toInvoiceResponse(invoice))
}
