package routes

import (
	"hotel-booking/constants"
	"hotel-booking/controllers"
	middlewares "hotel-booking/middleware"
	"hotel-booking/services"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps gom các kết nối hạ tầng được inject từ main
type Deps struct {
	DB            *gorm.DB
	Redis         *redis.Client
	Cloudinary    *cloudinary.Cloudinary
	Dispatcher    notification.Dispatcher
	Logger        logger.Logger
	PaymentSecret string
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	authService := services.NewAuthService(deps.DB)
	roomService := services.NewRoomService(deps.DB)
	bookingService := services.NewBookingService(deps.DB, deps.Dispatcher, deps.Logger)
	paymentService := services.NewPaymentService(deps.DB, deps.PaymentSecret, deps.Dispatcher, deps.Logger)
	invoiceService := services.NewInvoiceService(deps.DB)

	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(deps.Redis, deps.Cloudinary, roomService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(paymentService)
	invoiceController := controllers.NewInvoiceController(invoiceService)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", authController.Register)
	v1.POST("/auth/login", authController.Login)
	v1.GET("/profile", middlewares.AuthMiddleware(), authController.GetProfile)

	v1.GET("/room", roomController.GetAllRooms)
	v1.GET("/room/:id", roomController.GetRoomDetail)
	v1.POST("/room", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.UpdateRoom)
	v1.DELETE("/room/:roomNumber", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.DeleteRoom)
	v1.GET("/checkRoom", roomController.CheckRoom)
	v1.POST("/roomImage", middlewares.AuthMiddleware(constants.RoleAdmin), roomController.UploadRoomImage)

	v1.GET("/booking", middlewares.AuthMiddleware(constants.RoleAdmin), bookingController.GetBookings)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(), bookingController.GetBookingHistory)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(), bookingController.GetBookingDetail)
	v1.POST("/booking", middlewares.AuthMiddleware(), bookingController.CreateBooking)
	v1.PUT("/bookingCancel", middlewares.AuthMiddleware(), bookingController.CancelBooking)

	v1.POST("/payment/confirm", paymentController.ConfirmPayment)

	v1.GET("/invoices", middlewares.AuthMiddleware(constants.RoleAdmin), invoiceController.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(), invoiceController.GetDetailInvoice)
}
