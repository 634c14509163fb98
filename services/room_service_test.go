package services

import (
	"testing"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
)

func TestIsRoomFreeHalfOpenBoundary(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "boundary@test.vn")
	room := seedRoom(t, db, "101")

	svc := NewBookingService(db, &mockDispatcher{}, testLogger())
	_, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	})
	if err != nil {
		t.Fatalf("đặt phòng không thành công: %v", err)
	}

	// Trùng một phần với [2025-06-01, 2025-06-03)
	free, err := IsRoomFree(db, room.RoomId, "2025-06-02", "2025-06-04")
	if err != nil {
		t.Fatalf("IsRoomFree lỗi: %v", err)
	}
	if free {
		t.Error("khoảng giao với đơn hiện có phải báo không trống")
	}

	// Nhận phòng đúng ngày trả của đơn trước thì không trùng
	free, err = IsRoomFree(db, room.RoomId, "2025-06-03", "2025-06-05")
	if err != nil {
		t.Fatalf("IsRoomFree lỗi: %v", err)
	}
	if !free {
		t.Error("khoảng nối đuôi (nhận đúng ngày trả) phải báo trống")
	}
}

func TestIsRoomFreeAfterCreateSameRange(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "roundtrip@test.vn")
	room := seedRoom(t, db, "102")

	svc := NewBookingService(db, &mockDispatcher{}, testLogger())
	_, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-07-10",
		CheckOut:   "2025-07-12",
	})
	if err != nil {
		t.Fatalf("đặt phòng không thành công: %v", err)
	}

	free, err := IsRoomFree(db, room.RoomId, "2025-07-10", "2025-07-12")
	if err != nil {
		t.Fatalf("IsRoomFree lỗi: %v", err)
	}
	if free {
		t.Error("ngay sau khi đặt, cùng khoảng ngày phải báo không trống")
	}
}

func TestIsRoomFreeStaleStatus(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "103")

	// Trạng thái phòng bị lệch: không TRONG nhưng không có đơn nào
	err := db.Model(&models.Room{}).
		Where("room_id = ?", room.RoomId).
		Update("status", constants.RoomStatusDaThue).Error
	if err != nil {
		t.Fatalf("không cập nhật được trạng thái: %v", err)
	}

	free, err := IsRoomFree(db, room.RoomId, "2025-08-01", "2025-08-03")
	if err != nil {
		t.Fatalf("IsRoomFree lỗi: %v", err)
	}
	if free {
		t.Error("phòng trạng thái lệch (không TRONG, không đơn active) phải báo không trống")
	}
}

func TestIsRoomFreeValidation(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "104")

	_, err := IsRoomFree(db, room.RoomId, "2025-06-03", "2025-06-03")
	if !errors.HasCode(err, errors.ErrCodeValidation) {
		t.Errorf("checkOut == checkIn phải trả VALIDATION_ERROR, nhận: %v", err)
	}

	_, err = IsRoomFree(db, room.RoomId, "01-06-2025", "03-06-2025")
	if !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ngày sai định dạng phải trả INVALID_FORMAT, nhận: %v", err)
	}

	_, err = IsRoomFree(db, 9999, "2025-06-01", "2025-06-03")
	if !errors.HasCode(err, errors.ErrCodeRoomNotFound) {
		t.Errorf("phòng không tồn tại phải trả ROOM_NOT_FOUND, nhận: %v", err)
	}
}

func TestFindFreeRooms(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "findfree@test.vn")
	roomA := seedRoom(t, db, "201")
	roomB := seedRoom(t, db, "202")

	svc := NewBookingService(db, &mockDispatcher{}, testLogger())
	_, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     roomA.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-05",
	})
	if err != nil {
		t.Fatalf("đặt phòng không thành công: %v", err)
	}

	roomSvc := NewRoomService(db)
	free, err := roomSvc.FindFreeRooms("2025-06-02", "2025-06-04")
	if err != nil {
		t.Fatalf("FindFreeRooms lỗi: %v", err)
	}
	if len(free) != 1 || free[0].RoomId != roomB.RoomId {
		t.Errorf("chỉ phòng %s được trống trong khoảng hỏi, nhận %d phòng", roomB.RoomNumber, len(free))
	}

	// Ngoài khoảng của đơn thì cả hai phòng đều trống
	free, err = roomSvc.FindFreeRooms("2025-06-05", "2025-06-07")
	if err != nil {
		t.Fatalf("FindFreeRooms lỗi: %v", err)
	}
	if len(free) != 2 {
		t.Errorf("cả hai phòng phải trống ngoài khoảng đơn, nhận %d phòng", len(free))
	}
}
