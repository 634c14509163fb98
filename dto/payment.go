package dto

import "hotel-booking/constants"

// PaymentPayload là DTO cho request xác nhận thanh toán từ cổng thanh toán.
// Chữ ký HMAC đi kèm ngoài payload, trong header X-Signature.
type PaymentPayload struct {
	BookingID      uint    `json:"bookingId" validate:"required"`
	PaymentMethod  string  `json:"paymentMethod" validate:"required"`
	TransactionRef string  `json:"externalTransactionId" validate:"required"`
	AmountDue      float64 `json:"amountDue" validate:"required,gt=0"`
	AmountTendered float64 `json:"amountTendered" validate:"required,gt=0"`
	Change         float64 `json:"change"`
	Status         string  `json:"status" validate:"required"`
	Timestamp      int64   `json:"timestamp" validate:"required"`
	CustomerEmail  string  `json:"customerEmail" validate:"required,email"`
}

// InvoiceResponse là DTO cho response của hóa đơn
type InvoiceResponse struct {
	ID             uint                    `json:"id"`
	InvoiceCode    string                  `json:"invoiceCode"`
	BookingID      uint                    `json:"bookingId"`
	TotalAmount    float64                 `json:"totalAmount"`
	PaidAmount     float64                 `json:"paidAmount"`
	ChangeAmount   float64                 `json:"changeAmount"`
	PaymentMethod  string                  `json:"paymentMethod"`
	TransactionRef string                  `json:"transactionRef"`
	Status         constants.InvoiceStatus `json:"status"`
	PaymentDate    *string                 `json:"paymentDate,omitempty"`
	CreatedAt      string                  `json:"createdAt"`
	UpdatedAt      string                  `json:"updatedAt"`
	User           BookingUserResponse     `json:"user"`
}
