package controllers

import (
	"context"
	"strconv"
	"time"

	"hotel-booking/config"
	"hotel-booking/dto"
	"hotel-booking/models"
	"hotel-booking/response"
	"hotel-booking/services"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var roomCacheKey = "rooms:all"

// RoomController xử lý các endpoint về phòng
type RoomController struct {
	rdb         *redis.Client
	cld         *cloudinary.Cloudinary
	roomService *services.RoomService
}

func NewRoomController(rdb *redis.Client, cld *cloudinary.Cloudinary, roomService *services.RoomService) *RoomController {
	return &RoomController{rdb: rdb, cld: cld, roomService: roomService}
}

// invalidateRoomCache xóa cache danh sách phòng sau khi ghi
func (ctl *RoomController) invalidateRoomCache() {
	if ctl.rdb == nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, ctl.rdb, roomCacheKey)
}

// loadRooms lấy danh sách phòng, ưu tiên cache Redis
func (ctl *RoomController) loadRooms() ([]models.Room, error) {
	var rooms []models.Room

	if ctl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, roomCacheKey, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	rooms, err := ctl.roomService.GetAll()
	if err != nil {
		return nil, err
	}

	if ctl.rdb != nil {
		_ = services.SetToRedis(config.Ctx, ctl.rdb, roomCacheKey, rooms, 10*time.Minute)
	}
	return rooms, nil
}

// GetAllRooms trả về danh sách phòng có phân trang. Hỗ trợ lọc phòng trống
// theo khoảng ngày (fromDate/toDate) và tìm kiếm mờ theo tên loại phòng.
func (ctl *RoomController) GetAllRooms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	fromDate := c.Query("fromDate")
	toDate := c.Query("toDate")
	search := c.Query("search")
	status := c.Query("status")

	var rooms []models.Room
	var err error

	if fromDate != "" && toDate != "" {
		rooms, err = ctl.roomService.FindFreeRooms(fromDate, toDate)
	} else {
		rooms, err = ctl.loadRooms()
	}
	if err != nil {
		handleError(c, err)
		return
	}

	if status != "" {
		filtered := make([]models.Room, 0, len(rooms))
		for _, room := range rooms {
			if string(room.Status) == status {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}

	if search != "" {
		rooms = services.SearchRooms(search, rooms)
	}

	total := len(rooms)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	results := make([]dto.RoomResponse, 0, end-start)
	for i := start; i < end; i++ {
		results = append(results, toRoomResponse(&rooms[i]))
	}

	response.SuccessWithPagination(c, results, page, limit, total)
}

// GetRoomDetail trả về chi tiết một phòng
func (ctl *RoomController) GetRoomDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID phòng không hợp lệ")
		return
	}

	room, err := ctl.roomService.GetByID(uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, toRoomResponse(room))
}

// CreateRoom tạo phòng mới, chỉ dành cho admin
func (ctl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctl.roomService.Create(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	ctl.invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}

// UpdateRoom cập nhật thông tin phòng theo số phòng, chỉ dành cho admin
func (ctl *RoomController) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room, err := ctl.roomService.Update(&req)
	if err != nil {
		handleError(c, err)
		return
	}

	ctl.invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}

// DeleteRoom xóa phòng theo số phòng, chỉ dành cho admin
func (ctl *RoomController) DeleteRoom(c *gin.Context) {
	roomNumber := c.Param("roomNumber")
	if roomNumber == "" {
		response.BadRequest(c, "roomNumber là bắt buộc")
		return
	}

	if err := ctl.roomService.Delete(roomNumber); err != nil {
		handleError(c, err)
		return
	}

	ctl.invalidateRoomCache()
	response.Success(c, nil)
}

// CheckRoom kiểm tra phòng có trống trong khoảng [checkIn, checkOut) không
func (ctl *RoomController) CheckRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("roomId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}
	checkIn := c.Query("checkIn")
	checkOut := c.Query("checkOut")

	free, err := ctl.roomService.IsRoomFree(uint(roomID), checkIn, checkOut)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.CheckRoomResponse{
		RoomID:   uint(roomID),
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Free:     free,
	})
}

// UploadRoomImage upload ảnh phòng lên Cloudinary và gắn vào phòng
func (ctl *RoomController) UploadRoomImage(c *gin.Context) {
	roomNumber := c.PostForm("roomNumber")
	if roomNumber == "" {
		response.BadRequest(c, "roomNumber là bắt buộc")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := ctl.cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
	if err != nil {
		response.ServerError(c)
		return
	}

	room, err := ctl.roomService.AttachImage(roomNumber, resp.SecureURL)
	if err != nil {
		handleError(c, err)
		return
	}

	ctl.invalidateRoomCache()
	response.Success(c, toRoomResponse(room))
}
