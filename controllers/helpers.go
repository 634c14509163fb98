package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/response"

	"github.com/gin-gonic/gin"
)

// handleError ánh xạ AppError sang HTTP status tương ứng
func handleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	case errors.ErrCodeForbidden:
		response.Forbidden(c)
	case errors.ErrCodeRoomNotFound, errors.ErrCodeBookingNotFound,
		errors.ErrCodeCustomerNotFound, errors.ErrCodeUserNotFound,
		errors.ErrCodeDBNotFound:
		response.NotFound(c)
	case errors.ErrCodeRoomUnavailable, errors.ErrCodeAlreadyPaid,
		errors.ErrCodeRoomExists, errors.ErrCodeUserExists,
		errors.ErrCodeBookingNotPayable, errors.ErrCodeAlreadyCancelled:
		response.Conflict(c, appErr.Message)
	case errors.ErrCodeDBError:
		response.ServerError(c)
	default:
		response.BadRequest(c, appErr.Message)
	}
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Username:    user.Username,
		Role:        user.Role,
	}
}

func toRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:          room.RoomId,
		RoomNumber:  room.RoomNumber,
		Floor:       room.Floor,
		RoomType:    room.RoomType,
		People:      room.People,
		Description: room.Description,
		Price:       room.Price,
		Status:      room.Status,
		Avatar:      room.Avatar,
		Img:         room.Img,
	}
}

func toBookingResponse(booking *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:           booking.ID,
		BookedOnDate: booking.BookedOnDate,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Note:         booking.Note,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
	if booking.User != nil {
		resp.User = dto.BookingUserResponse{
			ID:          booking.User.ID,
			Name:        booking.User.Name,
			Email:       booking.User.Email,
			PhoneNumber: booking.User.PhoneNumber,
		}
	}
	resp.Room = dto.BookingRoomResponse{
		ID:         booking.Room.RoomId,
		RoomNumber: booking.Room.RoomNumber,
		RoomType:   booking.Room.RoomType,
		Price:      booking.Room.Price,
	}
	return resp
}

func toInvoiceResponse(invoice *models.Invoice) dto.InvoiceResponse {
	resp := dto.InvoiceResponse{
		ID:             invoice.ID,
		InvoiceCode:    invoice.InvoiceCode,
		BookingID:      invoice.BookingID,
		TotalAmount:    invoice.TotalAmount,
		PaidAmount:     invoice.PaidAmount,
		ChangeAmount:   invoice.ChangeAmount,
		PaymentMethod:  invoice.PaymentMethod,
		TransactionRef: invoice.TransactionRef,
		Status:         invoice.Status,
		CreatedAt:      invoice.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:      invoice.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if invoice.PaymentDate != nil {
		s := invoice.PaymentDate.Format("2006-01-02 15:04:05")
		resp.PaymentDate = &s
	}
	return resp
}
