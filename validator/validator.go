package validator

import (
	"regexp"
	"time"

	"hotel-booking/dto"
	"hotel-booking/errors"

	pv "github.com/go-playground/validator/v10"
)

var validate = pv.New()

// dateRegex định dạng ngày bắt buộc YYYY-MM-DD
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate kiểm tra chuỗi ngày đúng định dạng và là ngày có thật
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày không được để trống", nil)
	}
	if !dateRegex.MatchString(dateStr) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày phải theo định dạng YYYY-MM-DD", nil)
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày không hợp lệ", err)
	}
	return nil
}

// ValidateDateRange kiểm tra checkOut phải sau checkIn (khoảng nửa mở)
func ValidateDateRange(checkIn, checkOut string) error {
	if err := ValidateDate(checkIn); err != nil {
		return err
	}
	if err := ValidateDate(checkOut); err != nil {
		return err
	}
	// Chuỗi YYYY-MM-DD so sánh được trực tiếp
	if checkOut <= checkIn {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// ValidateBookingRequest kiểm tra dữ liệu đầu vào của đơn đặt phòng
func ValidateBookingRequest(req *dto.CreateBookingRequest) error {
	if req.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}
	if req.CustomerID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID khách hàng không được để trống", nil)
	}
	if req.BookedOnDate != "" {
		if err := ValidateDate(req.BookedOnDate); err != nil {
			return err
		}
	}
	return ValidateDateRange(req.CheckIn, req.CheckOut)
}

// ValidatePaymentPayload kiểm tra cấu trúc payload thanh toán
func ValidatePaymentPayload(payload *dto.PaymentPayload) error {
	if err := validate.Struct(payload); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Payload thanh toán thiếu hoặc sai trường bắt buộc", err)
	}
	if err := ValidateEmail(payload.CustomerEmail); err != nil {
		return err
	}
	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}
