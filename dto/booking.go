package dto

import (
	"time"

	"hotel-booking/constants"
)

// CreateBookingRequest là DTO cho request đặt phòng, ngày theo định dạng YYYY-MM-DD
type CreateBookingRequest struct {
	CustomerID   uint   `json:"customerId"`
	BookedOnDate string `json:"bookedOnDate"`
	CheckIn      string `json:"checkIn" binding:"required"`
	CheckOut     string `json:"checkOut" binding:"required"`
	RoomID       uint   `json:"roomId" binding:"required"`
	Note         string `json:"note"`
}

// CancelBookingRequest là DTO cho request hủy đặt phòng
type CancelBookingRequest struct {
	BookingID uint `json:"bookingId" binding:"required"`
}

// BookingUserResponse thông tin người đặt trong response
type BookingUserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingRoomResponse thông tin phòng trong response
type BookingRoomResponse struct {
	ID         uint    `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	RoomType   string  `json:"roomType"`
	Price      float64 `json:"price"`
}

// BookingResponse là DTO cho response của đơn đặt phòng
type BookingResponse struct {
	ID           uint                    `json:"id"`
	User         BookingUserResponse     `json:"user"`
	Room         BookingRoomResponse     `json:"room"`
	BookedOnDate string                  `json:"bookedOnDate"`
	CheckInDate  string                  `json:"checkInDate"`
	CheckOutDate string                  `json:"checkOutDate"`
	Note         string                  `json:"note,omitempty"`
	Status       constants.BookingStatus `json:"status"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}
