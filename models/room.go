package models

import (
	"encoding/json"
	"fmt"
	"time"

	"hotel-booking/constants"

	"gorm.io/gorm"
)

type Room struct {
	RoomId      uint                 `json:"id" gorm:"primaryKey"`
	RoomNumber  string               `json:"roomNumber" gorm:"unique;size:10"` // Số phòng do khách sạn tự đặt
	Floor       int                  `json:"floor"`
	RoomType    string               `json:"roomType"`
	People      int                  `json:"people"`
	Description string               `json:"description"`
	Price       float64              `json:"price" gorm:"type:decimal(12,2)"`
	Status      constants.RoomStatus `json:"status" gorm:"type:varchar(20);default:'TRONG'"`
	Avatar      string               `json:"avatar"`
	Img         json.RawMessage      `json:"img" gorm:"type:json"`
	CreatedAt   time.Time            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings    []Booking            `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if !r.Status.Valid() {
		return fmt.Errorf("trạng thái phòng không hợp lệ: %s", r.Status)
	}
	return nil
}

// BeforeSave chặn trạng thái lạ ngay tại tầng persistence
func (r *Room) BeforeSave(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = constants.RoomStatusTrong
	}
	return r.ValidateStatus()
}
