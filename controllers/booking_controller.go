package controllers

import (
	"strconv"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

// BookingController xử lý các endpoint đặt và hủy phòng
type BookingController struct {
	bookingService *services.BookingService
}

func NewBookingController(bookingService *services.BookingService) *BookingController {
	return &BookingController{bookingService: bookingService}
}

// GetBookings liệt kê toàn bộ đơn đặt phòng, chỉ dành cho admin
func (ctl *BookingController) GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	bookings, total, err := ctl.bookingService.List(page, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		results = append(results, toBookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// GetBookingHistory liệt kê đơn đặt phòng của chính người đang đăng nhập
func (ctl *BookingController) GetBookingHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	bookings, err := ctl.bookingService.ListByUser(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	results := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		results = append(results, toBookingResponse(&bookings[i]))
	}

	response.Success(c, results)
}

// GetBookingDetail trả về chi tiết một đơn đặt phòng. Khách chỉ xem được
// đơn của mình, admin xem được mọi đơn.
func (ctl *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID đơn không hợp lệ")
		return
	}

	userID := c.MustGet("userID").(uint)
	userRole := c.MustGet("userRole").(int)

	booking, err := ctl.bookingService.GetByID(uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	if userRole != constants.RoleAdmin && booking.UserID != userID {
		response.Forbidden(c)
		return
	}

	response.Success(c, toBookingResponse(booking))
}

// CreateBooking tạo đơn đặt phòng cho người đang đăng nhập. Admin được
// phép đặt hộ khách bằng cách gửi kèm customerId.
func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	userID := c.MustGet("userID").(uint)
	userRole := c.MustGet("userRole").(int)

	if req.CustomerID == 0 || userRole != constants.RoleAdmin {
		req.CustomerID = userID
	}

	booking, err := ctl.bookingService.CreateBooking(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	created, err := ctl.bookingService.GetByID(booking.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, toBookingResponse(created))
}

// CancelBooking hủy đơn đặt phòng của chính người đang đăng nhập
func (ctl *BookingController) CancelBooking(c *gin.Context) {
	var req dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	userID := c.MustGet("userID").(uint)

	if _, err := ctl.bookingService.CancelBooking(req.BookingID, userID); err != nil {
		handleError(c, err)
		return
	}

	cancelled, err := ctl.bookingService.GetByID(req.BookingID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, toBookingResponse(cancelled))
}
