package services

import (
	stderrors "errors"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/validator"

	json "github.com/goccy/go-json"
	"gorm.io/gorm"
)

// RoomService xử lý logic liên quan đến phòng
type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

// IsRoomFree kiểm tra phòng có trống trong khoảng [checkIn, checkOut) không.
// Hàm nhận handle DB để có thể chạy cả ngoài lẫn trong transaction đặt phòng.
func IsRoomFree(db *gorm.DB, roomID uint, checkIn, checkOut string) (bool, error) {
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return false, err
	}

	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}

	free, err := noOverlappingBooking(db, roomID, checkIn, checkOut)
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
	}
	if !free {
		return false, nil
	}

	// Trạng thái phòng không TRONG mà lại không có đơn active nào giải thích
	// được thì coi là dữ liệu lệch, từ chối cho chắc. Còn nếu trạng thái do
	// các đơn không trùng khoảng ngày gây ra thì phòng vẫn trống cho khoảng
	// được hỏi.
	if room.Status != constants.RoomStatusTrong {
		var active int64
		err := db.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", roomID, constants.ActiveBookingStatuses).
			Count(&active).Error
		if err != nil {
			return false, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
		}
		if active == 0 {
			return false, nil
		}
	}

	return true, nil
}

// noOverlappingBooking đếm các đơn active giao với khoảng yêu cầu theo ngữ
// nghĩa nửa mở: [a, b) giao [c, d) khi a < d và b > c
func noOverlappingBooking(db *gorm.DB, roomID uint, checkIn, checkOut string) (bool, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			roomID, constants.ActiveBookingStatuses, checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// IsRoomFree bản method dùng handle đã inject
func (s *RoomService) IsRoomFree(roomID uint, checkIn, checkOut string) (bool, error) {
	return IsRoomFree(s.db, roomID, checkIn, checkOut)
}

// FindFreeRooms lọc danh sách phòng còn trống trong khoảng ngày
func (s *RoomService) FindFreeRooms(checkIn, checkOut string) ([]models.Room, error) {
	if err := validator.ValidateDateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	var rooms []models.Room
	if err := s.db.Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}

	freeRooms := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		free, err := IsRoomFree(s.db, room.RoomId, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if free {
			freeRooms = append(freeRooms, room)
		}
	}
	return freeRooms, nil
}

// GetAll lấy toàn bộ danh sách phòng
func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}
	return rooms, nil
}

// GetByID lấy chi tiết một phòng
func (s *RoomService) GetByID(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}
	return &room, nil
}

// Create tạo phòng mới, số phòng không được trùng
func (s *RoomService) Create(req *dto.CreateRoomRequest) (*models.Room, error) {
	var existing models.Room
	if err := s.db.Where("room_number = ?", req.RoomNumber).First(&existing).Error; err == nil {
		return nil, errors.NewAppError(errors.ErrCodeRoomExists, "Số phòng đã tồn tại", nil)
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}

	room := models.Room{
		RoomNumber:  req.RoomNumber,
		Floor:       req.Floor,
		RoomType:    req.RoomType,
		People:      req.People,
		Description: req.Description,
		Price:       req.Price,
		Status:      constants.RoomStatusTrong,
		Avatar:      req.Avatar,
		Img:         req.Img,
	}
	if err := s.db.Create(&room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo phòng", err)
	}
	return &room, nil
}

// Update cập nhật các trường được gửi lên, định danh theo số phòng
func (s *RoomService) Update(req *dto.UpdateRoomRequest) (*models.Room, error) {
	room, err := s.GetByNumber(req.RoomNumber)
	if err != nil {
		return nil, err
	}

	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.People != nil {
		room.People = *req.People
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Avatar != nil {
		room.Avatar = *req.Avatar
	}
	if len(req.Img) > 0 {
		room.Img = req.Img
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật phòng", err)
	}
	return room, nil
}

// Delete xóa phòng theo số phòng. Phòng còn đơn active thì không xóa được.
func (s *RoomService) Delete(roomNumber string) error {
	room, err := s.GetByNumber(roomNumber)
	if err != nil {
		return err
	}

	var active int64
	err = s.db.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ?", room.RoomId, constants.ActiveBookingStatuses).
		Count(&active).Error
	if err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn đơn đặt phòng", err)
	}
	if active > 0 {
		return errors.NewAppError(errors.ErrCodeRoomUnavailable, "Phòng còn đơn đặt chưa kết thúc", nil)
	}

	if err := s.db.Delete(room).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Lỗi xóa phòng", err)
	}
	return nil
}

// AttachImage thêm URL ảnh vào danh sách ảnh của phòng
func (s *RoomService) AttachImage(roomNumber, url string) (*models.Room, error) {
	room, err := s.GetByNumber(roomNumber)
	if err != nil {
		return nil, err
	}

	var imgs []string
	if len(room.Img) > 0 {
		if err := json.Unmarshal(room.Img, &imgs); err != nil {
			imgs = nil
		}
	}
	imgs = append(imgs, url)

	data, err := json.Marshal(imgs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi mã hóa danh sách ảnh", err)
	}
	room.Img = data
	if room.Avatar == "" {
		room.Avatar = url
	}

	if err := s.db.Save(room).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi cập nhật phòng", err)
	}
	return room, nil
}

// GetByNumber tìm phòng theo số phòng do khách sạn tự đặt
func (s *RoomService) GetByNumber(roomNumber string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn phòng", err)
	}
	return &room, nil
}
