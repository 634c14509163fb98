package models

import (
	"fmt"
	"time"

	"hotel-booking/constants"

	"gorm.io/gorm"
)

// Booking một đơn đặt phòng. Các ngày lưu dạng chuỗi YYYY-MM-DD nên so sánh
// chuỗi trùng với so sánh thời gian.
type Booking struct {
	ID           uint                    `json:"id" gorm:"primaryKey"`
	UserID       uint                    `json:"userId" gorm:"index"`
	User         *User                   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID       uint                    `json:"roomId" gorm:"index"`
	Room         Room                    `json:"room" gorm:"foreignKey:RoomID"`
	BookedOnDate string                  `json:"bookedOnDate"`
	CheckInDate  string                  `json:"checkInDate" gorm:"index"`
	CheckOutDate string                  `json:"checkOutDate" gorm:"index"`
	Note         string                  `json:"note"`
	Status       constants.BookingStatus `json:"status" gorm:"type:varchar(20);default:'DA_THUE'"`
	CreatedAt    time.Time               `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time               `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Booking) ValidateStatus() error {
	if !b.Status.Valid() {
		return fmt.Errorf("trạng thái đơn đặt phòng không hợp lệ: %s", b.Status)
	}
	return nil
}

// BeforeSave chặn trạng thái lạ ngay tại tầng persistence
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = constants.BookingStatusDaThue
	}
	return b.ValidateStatus()
}

// Overlaps kiểm tra hai khoảng [checkIn, checkOut) có giao nhau không.
// Ngày trả phòng không tính là ngày ở nên trả phòng và nhận phòng cùng
// ngày không bị coi là trùng.
func (b *Booking) Overlaps(checkIn, checkOut string) bool {
	return b.CheckInDate < checkOut && b.CheckOutDate > checkIn
}
