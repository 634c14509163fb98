package controllers

import (
	"strconv"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

// InvoiceController xử lý tra cứu hóa đơn, chỉ dành cho admin
type InvoiceController struct {
	invoiceService *services.InvoiceService
}

func NewInvoiceController(invoiceService *services.InvoiceService) *InvoiceController {
	return &InvoiceController{invoiceService: invoiceService}
}

// GetInvoices liệt kê hóa đơn có phân trang
func (ctl *InvoiceController) GetInvoices(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	invoices, total, err := ctl.invoiceService.List(page, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	results := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		results = append(results, toInvoiceResponse(&invoices[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, int(total))
}

// GetDetailInvoice trả về chi tiết một hóa đơn kèm người đặt.
// Khách chỉ xem được hóa đơn của đơn mình đặt, admin xem được tất cả.
func (ctl *InvoiceController) GetDetailInvoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID hóa đơn không hợp lệ")
		return
	}

	userID := c.MustGet("userID").(uint)
	userRole := c.MustGet("userRole").(int)

	invoice, user, err := ctl.invoiceService.GetByID(uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	if userRole != constants.RoleAdmin && (user == nil || user.ID != userID) {
		response.Forbidden(c)
		return
	}

	resp := toInvoiceResponse(invoice)
	if user != nil {
		resp.User = dto.BookingUserResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		}
	}

	response.Success(c, resp)
}
