package models

import (
	"hotel-booking/constants"
	apperrors "hotel-booking/errors"
)

// BookingState định nghĩa interface cho các trạng thái của đơn đặt phòng.
// Mọi chuyển trạng thái đều phải đi qua đây, không gán Status trực tiếp.
type BookingState interface {
	Cancel(b *Booking) error
	CheckIn(b *Booking) error
	Pay(b *Booking) error
	Complete(b *Booking) error
}

// DaThueState trạng thái đã thuê (mới đặt, chưa nhận phòng)
type DaThueState struct{}

func (s *DaThueState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusDaHuy
	return nil
}

func (s *DaThueState) CheckIn(b *Booking) error {
	b.Status = constants.BookingStatusDangSuDung
	return nil
}

func (s *DaThueState) Pay(b *Booking) error {
	b.Status = constants.BookingStatusDaThanhToan
	return nil
}

func (s *DaThueState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusHoanThanh
	return nil
}

// DangSuDungState trạng thái đang sử dụng (đã nhận phòng)
type DangSuDungState struct{}

func (s *DangSuDungState) Cancel(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeValidation, "Không thể hủy đơn đang sử dụng", nil)
}

func (s *DangSuDungState) CheckIn(b *Booking) error {
	// Đã nhận phòng rồi, chạy lại không đổi gì
	return nil
}

func (s *DangSuDungState) Pay(b *Booking) error {
	b.Status = constants.BookingStatusDaThanhToan
	return nil
}

func (s *DangSuDungState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusHoanThanh
	return nil
}

// DaThanhToanState trạng thái đã thanh toán
type DaThanhToanState struct{}

func (s *DaThanhToanState) Cancel(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeAlreadyPaid, "Đơn đã thanh toán, không thể hủy", nil)
}

func (s *DaThanhToanState) CheckIn(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Đơn đã thanh toán, không thể nhận phòng lại", nil)
}

func (s *DaThanhToanState) Pay(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeAlreadyPaid, "Đơn đã thanh toán rồi", nil)
}

func (s *DaThanhToanState) Complete(b *Booking) error {
	b.Status = constants.BookingStatusHoanThanh
	return nil
}

// DaHuyState trạng thái đã hủy
type DaHuyState struct{}

func (s *DaHuyState) Cancel(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeAlreadyCancelled, "Đơn đã hủy rồi", nil)
}

func (s *DaHuyState) CheckIn(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Đơn đã hủy, không thể nhận phòng", nil)
}

func (s *DaHuyState) Pay(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeBookingNotPayable, "Đơn đã hủy, không thể thanh toán", nil)
}

func (s *DaHuyState) Complete(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Đơn đã hủy, không thể hoàn thành", nil)
}

// HoanThanhState trạng thái hoàn thành (đã qua ngày trả phòng)
type HoanThanhState struct{}

func (s *HoanThanhState) Cancel(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Đơn đã hoàn thành, không thể hủy", nil)
}

func (s *HoanThanhState) CheckIn(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus, "Đơn đã hoàn thành, không thể nhận phòng", nil)
}

func (s *HoanThanhState) Pay(b *Booking) error {
	return apperrors.NewAppError(apperrors.ErrCodeBookingNotPayable, "Đơn đã hoàn thành, không thể thanh toán", nil)
}

func (s *HoanThanhState) Complete(b *Booking) error {
	// Đã hoàn thành rồi, chạy lại không đổi gì
	return nil
}

// GetBookingState trả về state tương ứng với trạng thái đơn đặt phòng
func GetBookingState(status constants.BookingStatus) BookingState {
	switch status {
	case constants.BookingStatusDaThue:
		return &DaThueState{}
	case constants.BookingStatusDangSuDung:
		return &DangSuDungState{}
	case constants.BookingStatusDaThanhToan:
		return &DaThanhToanState{}
	case constants.BookingStatusDaHuy:
		return &DaHuyState{}
	case constants.BookingStatusHoanThanh:
		return &HoanThanhState{}
	default:
		return &DaThueState{}
	}
}
