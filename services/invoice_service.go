package services

import (
	stderrors "errors"

	"hotel-booking/errors"
	"hotel-booking/models"

	"gorm.io/gorm"
)

// InvoiceService tra cứu hóa đơn cho màn hình quản trị
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// List liệt kê hóa đơn có phân trang, mới nhất trước
func (s *InvoiceService) List(page, limit int) ([]models.Invoice, int64, error) {
	var total int64
	if err := s.db.Model(&models.Invoice{}).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn hóa đơn", err)
	}

	var invoices []models.Invoice
	err := s.db.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn hóa đơn", err)
	}
	return invoices, total, nil
}

// GetByID lấy chi tiết hóa đơn kèm người đặt của đơn tương ứng
func (s *InvoiceService) GetByID(invoiceID uint) (*models.Invoice, *models.User, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, invoiceID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy hóa đơn", err)
		}
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn hóa đơn", err)
	}

	var booking models.Booking
	if err := s.db.Preload("User").First(&booking, invoice.BookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return &invoice, nil, nil
		}
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
	}

	return &invoice, booking.User, nil
}
