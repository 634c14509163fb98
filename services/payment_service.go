package services

import (
	stderrors "errors"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"
	"hotel-booking/validator"

	"gorm.io/gorm"
)

// Cửa sổ chống replay cho payload thanh toán
const paymentFreshnessWindow = 300 * time.Second

// Trạng thái cổng thanh toán báo về khi giao dịch thành công
const gatewayStatusCompleted = "completed"

// PaymentService xác nhận thanh toán từ cổng thanh toán. Hóa đơn và trạng
// thái đơn/phòng được ghi trong cùng một transaction; trạng thái đơn là
// nguồn sự thật cho câu hỏi "đơn đã thanh toán chưa".
type PaymentService struct {
	db         *gorm.DB
	secret     string
	dispatcher notification.Dispatcher
	logger     logger.Logger
	now        func() time.Time
}

func NewPaymentService(db *gorm.DB, secret string, dispatcher notification.Dispatcher, l logger.Logger) *PaymentService {
	return &PaymentService{
		db:         db,
		secret:     secret,
		dispatcher: dispatcher,
		logger:     l,
		now:        time.Now,
	}
}

// ConfirmPayment xác thực payload đã ký rồi ghi hóa đơn. Mọi kiểm tra
// trạng thái được lặp lại trong transaction nên gọi hai lần với cùng
// payload thì lần thứ hai nhận ALREADY_PAID, không sinh hóa đơn thứ hai.
func (s *PaymentService) ConfirmPayment(payload *dto.PaymentPayload, signature string) (*models.Invoice, error) {
	if err := validator.ValidatePaymentPayload(payload); err != nil {
		return nil, err
	}

	// Chống replay: payload quá hạn cửa sổ 300 giây bị từ chối
	age := s.now().Unix() - payload.Timestamp
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second > paymentFreshnessWindow {
		return nil, errors.NewAppError(errors.ErrCodeStaleRequest, "Yêu cầu thanh toán không hợp lệ", nil)
	}

	if !VerifySignature(payload, s.secret, signature) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidSignature, "Yêu cầu thanh toán không hợp lệ", nil)
	}

	if payload.AmountTendered < payload.AmountDue {
		return nil, errors.NewAppError(errors.ErrCodeInsufficientAmount, "Số tiền thanh toán không đủ", nil)
	}

	invoiceStatus := constants.InvoiceStatusChuaThanhToan
	if payload.Status == gatewayStatusCompleted {
		invoiceStatus = constants.InvoiceStatusDaThanhToan
	}

	var invoice models.Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := lockForUpdate(tx).First(&booking, payload.BookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy đơn đặt phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
		}

		// Mỗi đơn chỉ được có một hóa đơn đã thanh toán
		var paidCount int64
		err := tx.Model(&models.Invoice{}).
			Where("booking_id = ? AND status = ?", booking.ID, constants.InvoiceStatusDaThanhToan).
			Count(&paidCount).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn hóa đơn", err)
		}
		if paidCount > 0 {
			return errors.NewAppError(errors.ErrCodeAlreadyPaid, "Đơn đã có hóa đơn thanh toán", nil)
		}

		// Kiểm tra đơn còn ở trạng thái thanh toán được; Pay đồng thời
		// chuyển trạng thái đơn sang DA_THANH_TOAN
		state := models.GetBookingState(booking.Status)
		if err := state.Pay(&booking); err != nil {
			return err
		}

		paymentDate := s.now()
		invoice = models.Invoice{
			BookingID:      booking.ID,
			TotalAmount:    payload.AmountDue,
			PaidAmount:     payload.AmountTendered,
			ChangeAmount:   payload.AmountTendered - payload.AmountDue,
			PaymentMethod:  payload.PaymentMethod,
			TransactionRef: payload.TransactionRef,
			Status:         invoiceStatus,
		}
		if invoiceStatus == constants.InvoiceStatusDaThanhToan {
			invoice.PaymentDate = &paymentDate
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo hóa đơn", err)
		}

		// Cổng báo giao dịch chưa hoàn tất: giữ nguyên trạng thái đơn,
		// chỉ lưu hóa đơn CHUA_THANH_TOAN để đối soát
		if invoiceStatus != constants.InvoiceStatusDaThanhToan {
			return nil
		}

		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật đơn đặt phòng", err)
		}
		err = tx.Model(&models.Room{}).
			Where("room_id = ?", booking.RoomID).
			Update("status", constants.RoomStatusDaThanhToan).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật trạng thái phòng", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã ghi hóa đơn %s cho đơn %d (%s)", invoice.InvoiceCode, invoice.BookingID, invoice.Status)

	// Tiền thừa qua ví điện tử: báo khách sau khi đã commit
	if invoice.ChangeAmount > 0 &&
		payload.PaymentMethod == constants.PaymentMethodMomo &&
		invoice.Status == constants.InvoiceStatusDaThanhToan {
		s.dispatcher.Dispatch([]notification.Event{{
			Type:         notification.EventExcessAmount,
			Email:        payload.CustomerEmail,
			BookingID:    invoice.BookingID,
			InvoiceID:    invoice.ID,
			ExcessAmount: invoice.ChangeAmount,
		}})
	}

	return &invoice, nil
}
