package controllers

import (
	"hotel-booking/dto"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/gin-gonic/gin"
)

// AuthController xử lý đăng ký, đăng nhập và hồ sơ người dùng
type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register xử lý đăng ký tài khoản khách hàng
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ctl.authService.Register(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, toUserResponse(user))
}

// Login xử lý đăng nhập, trả về token JWT
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	token, user, err := ctl.authService.Login(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	})
}

// GetProfile trả về thông tin người dùng đang đăng nhập
func (ctl *AuthController) GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	user, err := ctl.authService.GetProfile(userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, toUserResponse(user))
}
