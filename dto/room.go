package dto

import (
	"encoding/json"

	"hotel-booking/constants"
)

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	Floor       int             `json:"floor" binding:"required"`
	RoomType    string          `json:"roomType" binding:"required"`
	People      int             `json:"people" binding:"required,min=1"`
	Description string          `json:"description"`
	Price       float64         `json:"price" binding:"required,gt=0"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng, định danh theo số phòng
type UpdateRoomRequest struct {
	RoomNumber  string          `json:"roomNumber" binding:"required"`
	Floor       *int            `json:"floor"`
	RoomType    *string         `json:"roomType"`
	People      *int            `json:"people"`
	Description *string         `json:"description"`
	Price       *float64        `json:"price"`
	Avatar      *string         `json:"avatar"`
	Img         json.RawMessage `json:"img"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID          uint                 `json:"id"`
	RoomNumber  string               `json:"roomNumber"`
	Floor       int                  `json:"floor"`
	RoomType    string               `json:"roomType"`
	People      int                  `json:"people"`
	Description string               `json:"description"`
	Price       float64              `json:"price"`
	Status      constants.RoomStatus `json:"status"`
	Avatar      string               `json:"avatar"`
	Img         json.RawMessage      `json:"img,omitempty"`
}

// CheckRoomResponse là DTO cho response kiểm tra phòng trống
type CheckRoomResponse struct {
	RoomID   uint   `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Free     bool   `json:"free"`
}
