package models

import (
	"fmt"
	"time"

	"hotel-booking/constants"

	"gorm.io/gorm"
)

type Invoice struct {
	ID             uint                    `json:"id" gorm:"primaryKey"`
	InvoiceCode    string                  `json:"invoiceCode" gorm:"unique;size:20"` // Mã hóa đơn duy nhất
	BookingID      uint                    `json:"bookingId" gorm:"index"`
	Booking        Booking                 `json:"booking" gorm:"foreignKey:BookingID"`
	TotalAmount    float64                 `json:"totalAmount"`    // Số tiền phải trả
	PaidAmount     float64                 `json:"paidAmount"`     // Số tiền khách đưa
	ChangeAmount   float64                 `json:"changeAmount"`   // Tiền thừa trả lại
	PaymentMethod  string                  `json:"paymentMethod"`  // momo, tien_mat, chuyen_khoan
	TransactionRef string                  `json:"transactionRef"` // Mã giao dịch phía cổng thanh toán
	Status         constants.InvoiceStatus `json:"status" gorm:"type:varchar(20)"`
	PaymentDate    *time.Time              `json:"paymentDate,omitempty"`
	CreatedAt      time.Time               `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time               `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if invoice.InvoiceCode == "" {
		invoice.InvoiceCode = fmt.Sprintf("HD%d", time.Now().UnixNano()/int64(time.Millisecond))
	}

	var count int64
	if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("mã hóa đơn đã tồn tại, hãy thử lại")
	}
	return nil
}

// BeforeSave chặn trạng thái lạ ngay tại tầng persistence
func (invoice *Invoice) BeforeSave(tx *gorm.DB) error {
	if invoice.Status == "" {
		invoice.Status = constants.InvoiceStatusChuaThanhToan
	}
	if !invoice.Status.Valid() {
		return fmt.Errorf("trạng thái hóa đơn không hợp lệ: %s", invoice.Status)
	}
	return nil
}
