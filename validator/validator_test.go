package validator

import (
	"testing"

	"hotel-booking/dto"
	"hotel-booking/errors"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		wantCode errors.ErrorCode
	}{
		{"ngày hợp lệ", "2025-06-01", ""},
		{"rỗng", "", errors.ErrCodeRequiredField},
		{"sai định dạng", "01/06/2025", errors.ErrCodeInvalidFormat},
		{"thiếu số không", "2025-6-1", errors.ErrCodeInvalidFormat},
		{"tháng không tồn tại", "2025-13-01", errors.ErrCodeInvalidFormat},
		{"ngày không tồn tại", "2025-02-30", errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("ValidateDate(%q) lỗi: %v", tt.date, err)
				}
				return
			}
			if !errors.HasCode(err, tt.wantCode) {
				t.Errorf("ValidateDate(%q) muốn mã %s, nhận %v", tt.date, tt.wantCode, err)
			}
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	if err := ValidateDateRange("2025-06-01", "2025-06-03"); err != nil {
		t.Errorf("khoảng hợp lệ bị từ chối: %v", err)
	}

	err := ValidateDateRange("2025-06-03", "2025-06-03")
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("checkOut == checkIn phải bị từ chối, nhận %v", err)
	}

	err = ValidateDateRange("2025-06-05", "2025-06-03")
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("checkOut trước checkIn phải bị từ chối, nhận %v", err)
	}
}

func TestValidateBookingRequest(t *testing.T) {
	valid := &dto.CreateBookingRequest{
		CustomerID: 1,
		RoomID:     2,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	}
	if err := ValidateBookingRequest(valid); err != nil {
		t.Errorf("request hợp lệ bị từ chối: %v", err)
	}

	noRoom := &dto.CreateBookingRequest{CustomerID: 1, CheckIn: "2025-06-01", CheckOut: "2025-06-03"}
	if err := ValidateBookingRequest(noRoom); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Errorf("thiếu roomId phải trả REQUIRED_FIELD, nhận %v", err)
	}

	noCustomer := &dto.CreateBookingRequest{RoomID: 2, CheckIn: "2025-06-01", CheckOut: "2025-06-03"}
	if err := ValidateBookingRequest(noCustomer); !errors.HasCode(err, errors.ErrCodeRequiredField) {
		t.Errorf("thiếu customerId phải trả REQUIRED_FIELD, nhận %v", err)
	}
}

func TestValidatePaymentPayload(t *testing.T) {
	valid := &dto.PaymentPayload{
		BookingID:      1,
		PaymentMethod:  "momo",
		TransactionRef: "TXN-1",
		AmountDue:      100,
		AmountTendered: 100,
		Status:         "completed",
		Timestamp:      1750000000,
		CustomerEmail:  "a@b.vn",
	}
	if err := ValidatePaymentPayload(valid); err != nil {
		t.Errorf("payload hợp lệ bị từ chối: %v", err)
	}

	missing := &dto.PaymentPayload{BookingID: 1}
	if err := ValidatePaymentPayload(missing); !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("payload thiếu trường phải trả VALIDATION_ERROR, nhận %v", err)
	}

	badEmail := *valid
	badEmail.CustomerEmail = "khong-phai-email"
	if err := ValidatePaymentPayload(&badEmail); err == nil {
		t.Error("email sai phải bị từ chối")
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("khach@example.vn"); err != nil {
		t.Errorf("email hợp lệ bị từ chối: %v", err)
	}
	if err := ValidateEmail("khach@"); !errors.HasCode(err, errors.ErrCodeInvalidEmail) {
		t.Errorf("email cụt phải trả INVALID_EMAIL, nhận %v", err)
	}
}
