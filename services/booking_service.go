package services

import (
	stderrors "errors"
	"time"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"
	"hotel-booking/validator"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService xử lý đặt phòng và hủy đặt phòng. Mọi thao tác ghi đều
// nằm trong một transaction; thông báo chỉ phát sau khi commit.
type BookingService struct {
	db         *gorm.DB
	dispatcher notification.Dispatcher
	logger     logger.Logger
}

func NewBookingService(db *gorm.DB, dispatcher notification.Dispatcher, l logger.Logger) *BookingService {
	return &BookingService{
		db:         db,
		dispatcher: dispatcher,
		logger:     l,
	}
}

// lockForUpdate khóa dòng theo kiểu SELECT ... FOR UPDATE.
// SQLite dùng trong test không hỗ trợ mệnh đề này.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateBooking tạo đơn đặt phòng mới với trạng thái DA_THUE.
// Phòng bị khóa dòng trong suốt transaction nên hai request đặt trùng
// khoảng ngày chỉ có đúng một request thành công.
func (s *BookingService) CreateBooking(req *dto.CreateBookingRequest) (*models.Booking, error) {
	if err := validator.ValidateBookingRequest(req); err != nil {
		return nil, err
	}

	bookedOn := req.BookedOnDate
	if bookedOn == "" {
		bookedOn = time.Now().Format("2006-01-02")
	}

	var booking models.Booking
	var room models.Room
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&room, req.RoomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
		}

		if room.Status != constants.RoomStatusTrong {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng không còn trống", nil)
		}

		// Kiểm tra lại khoảng ngày ngay trong transaction để đóng khe hở
		// giữa lúc client kiểm tra và lúc ghi
		free, err := noOverlappingBooking(tx, room.RoomId, req.CheckIn, req.CheckOut)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
		}
		if !free {
			return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng đã được đặt trong khoảng thời gian này", nil)
		}

		if err := tx.First(&user, req.CustomerID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeCustomerNotFound, "Không tìm thấy khách hàng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn khách hàng", err)
		}

		booking = models.Booking{
			UserID:       user.ID,
			RoomID:       room.RoomId,
			BookedOnDate: bookedOn,
			CheckInDate:  req.CheckIn,
			CheckOutDate: req.CheckOut,
			Note:         req.Note,
			Status:       constants.BookingStatusDaThue,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo đơn đặt phòng", err)
		}

		room.Status = constants.RoomStatusDaThue
		if err := tx.Save(&room).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật trạng thái phòng", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã tạo đơn %d cho phòng %s (%s -> %s)", booking.ID, room.RoomNumber, booking.CheckInDate, booking.CheckOutDate)

	// Gửi thông báo sau khi commit; lỗi gửi không ảnh hưởng tới đơn đã tạo
	s.dispatcher.Dispatch([]notification.Event{{
		Type:       notification.EventBookingConfirmed,
		Email:      user.Email,
		BookingID:  booking.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    booking.CheckInDate,
		CheckOut:   booking.CheckOutDate,
	}})

	return &booking, nil
}

// CancelBooking hủy đơn theo yêu cầu của chính chủ đơn. Chỉ hủy được khi
// đơn chưa thanh toán; phòng chỉ trả về TRONG khi không còn đơn active
// nào khác giữ phòng đó.
func (s *BookingService) CancelBooking(bookingID, requestingUserID uint) (*models.Booking, error) {
	var booking models.Booking
	var room models.Room
	var userEmail string

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Preload("User").First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy đơn đặt phòng", err)
			}
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
		}

		if booking.UserID != requestingUserID {
			return errors.NewAppError(errors.ErrCodeForbidden, "Chỉ chủ đơn mới được hủy", nil)
		}
		if booking.User != nil {
			userEmail = booking.User.Email
		}

		state := models.GetBookingState(booking.Status)
		if err := state.Cancel(&booking); err != nil {
			return err
		}

		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật đơn đặt phòng", err)
		}

		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
		}

		// Tính lại tập đơn active ngay trong transaction, không tin
		// trạng thái đã load trước đó
		var remaining int64
		err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND id <> ? AND status IN ?",
				booking.RoomID, booking.ID, constants.ActiveBookingStatuses).
			Count(&remaining).Error
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
		}

		if remaining == 0 {
			room.Status = constants.RoomStatusTrong
			if err := tx.Save(&room).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật trạng thái phòng", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Đã hủy đơn %d", booking.ID)

	s.dispatcher.Dispatch([]notification.Event{{
		Type:       notification.EventBookingCancelled,
		Email:      userEmail,
		BookingID:  booking.ID,
		RoomNumber: room.RoomNumber,
		CheckIn:    booking.CheckInDate,
		CheckOut:   booking.CheckOutDate,
	}})

	return &booking, nil
}

// List liệt kê đơn đặt phòng có phân trang, mới nhất trước
func (s *BookingService) List(page, limit int) ([]models.Booking, int64, error) {
	var total int64
	if err := s.db.Model(&models.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
	}

	var bookings []models.Booking
	err := s.db.Preload("User").Preload("Room").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
	}
	return bookings, total, nil
}

// ListByUser liệt kê đơn đặt phòng của một khách hàng
func (s *BookingService) ListByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.Preload("User").Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
	}
	return bookings, nil
}

// GetByID lấy đơn đặt phòng kèm phòng và người đặt
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("User").Preload("Room").First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, "Không tìm thấy đơn đặt phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
	}
	return &booking, nil
}
