package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleCustomer = 0
	RoleAdmin    = 1
)

// RoomStatus trạng thái phòng, lưu dưới dạng chuỗi đóng
type RoomStatus string

const (
	RoomStatusTrong       RoomStatus = "TRONG"
	RoomStatusDaThue      RoomStatus = "DA_THUE"
	RoomStatusDangSuDung  RoomStatus = "DANG_SU_DUNG"
	RoomStatusDaThanhToan RoomStatus = "DA_THANH_TOAN"
)

// Valid kiểm tra trạng thái phòng có thuộc tập giá trị cho phép không
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomStatusTrong, RoomStatusDaThue, RoomStatusDangSuDung, RoomStatusDaThanhToan:
		return true
	}
	return false
}

// BookingStatus trạng thái đơn đặt phòng
type BookingStatus string

const (
	BookingStatusDaThue      BookingStatus = "DA_THUE"
	BookingStatusDangSuDung  BookingStatus = "DANG_SU_DUNG"
	BookingStatusDaThanhToan BookingStatus = "DA_THANH_TOAN"
	BookingStatusDaHuy       BookingStatus = "DA_HUY"
	BookingStatusHoanThanh   BookingStatus = "HOAN_THANH"
)

// Valid kiểm tra trạng thái đơn đặt phòng có hợp lệ không
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusDaThue, BookingStatusDangSuDung, BookingStatusDaThanhToan,
		BookingStatusDaHuy, BookingStatusHoanThanh:
		return true
	}
	return false
}

// Active cho biết đơn còn được tính khi xét phòng trống hay không
func (s BookingStatus) Active() bool {
	switch s {
	case BookingStatusDaThue, BookingStatusDangSuDung, BookingStatusDaThanhToan:
		return true
	}
	return false
}

// ActiveBookingStatuses tập trạng thái đơn còn chiếm phòng
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusDaThue,
	BookingStatusDangSuDung,
	BookingStatusDaThanhToan,
}

// InvoiceStatus trạng thái hóa đơn
type InvoiceStatus string

const (
	InvoiceStatusDaThanhToan   InvoiceStatus = "DA_THANH_TOAN"
	InvoiceStatusChuaThanhToan InvoiceStatus = "CHUA_THANH_TOAN"
)

// Valid kiểm tra trạng thái hóa đơn có hợp lệ không
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDaThanhToan, InvoiceStatusChuaThanhToan:
		return true
	}
	return false
}

// Payment method
const (
	PaymentMethodMomo        = "momo"
	PaymentMethodTienMat     = "tien_mat"
	PaymentMethodChuyenKhoan = "chuyen_khoan"
)
