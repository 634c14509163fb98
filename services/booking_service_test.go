package services

import (
	"testing"

	"hotel-booking/constants"
	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/services/notification"
)

func TestCreateBooking(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "create@test.vn")
	room := seedRoom(t, db, "301")
	dispatcher := &mockDispatcher{}

	svc := NewBookingService(db, dispatcher, testLogger())
	booking, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
		Note:       "tầng cao",
	})
	if err != nil {
		t.Fatalf("đặt phòng không thành công: %v", err)
	}

	if booking.Status != constants.BookingStatusDaThue {
		t.Errorf("đơn mới phải có trạng thái DA_THUE, nhận %s", booking.Status)
	}

	var savedRoom models.Room
	if err := db.First(&savedRoom, room.RoomId).Error; err != nil {
		t.Fatalf("không đọc lại được phòng: %v", err)
	}
	if savedRoom.Status == constants.RoomStatusTrong {
		t.Error("phòng phải rời trạng thái TRONG sau khi có đơn")
	}

	if len(dispatcher.events) != 1 || dispatcher.events[0].Type != notification.EventBookingConfirmed {
		t.Errorf("phải phát đúng một event BOOKING_CONFIRMED, nhận %v", dispatcher.events)
	}
	if dispatcher.events[0].Email != user.Email {
		t.Errorf("event phải mang email người đặt, nhận %q", dispatcher.events[0].Email)
	}
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "overlap@test.vn")
	room := seedRoom(t, db, "302")
	dispatcher := &mockDispatcher{}

	svc := NewBookingService(db, dispatcher, testLogger())
	_, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-05",
	})
	if err != nil {
		t.Fatalf("đơn đầu phải thành công: %v", err)
	}

	_, err = svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-03",
		CheckOut:   "2025-06-07",
	})
	if !errors.HasCode(err, errors.ErrCodeRoomUnavailable) {
		t.Fatalf("đơn trùng khoảng phải trả ROOM_UNAVAILABLE, nhận: %v", err)
	}

	// Đơn bị từ chối không được phát thông báo
	if len(dispatcher.events) != 1 {
		t.Errorf("chỉ đơn thành công mới phát event, nhận %d event", len(dispatcher.events))
	}

	// Bất biến: không tồn tại hai đơn active giao nhau trên cùng phòng
	var bookings []models.Booking
	if err := db.Where("room_id = ? AND status IN ?", room.RoomId, constants.ActiveBookingStatuses).Find(&bookings).Error; err != nil {
		t.Fatalf("không đọc được danh sách đơn: %v", err)
	}
	for i := range bookings {
		for j := i + 1; j < len(bookings); j++ {
			if bookings[i].Overlaps(bookings[j].CheckInDate, bookings[j].CheckOutDate) {
				t.Errorf("đơn %d và %d giao nhau", bookings[i].ID, bookings[j].ID)
			}
		}
	}
}

func TestCreateBookingUnknownCustomer(t *testing.T) {
	db := newTestDB(t)
	room := seedRoom(t, db, "303")

	svc := NewBookingService(db, &mockDispatcher{}, testLogger())
	_, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: 9999,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	})
	if !errors.HasCode(err, errors.ErrCodeCustomerNotFound) {
		t.Fatalf("khách không tồn tại phải trả CUSTOMER_NOT_FOUND, nhận: %v", err)
	}

	// Transaction phải rollback, không để lại đơn nào
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("không được ghi đơn khi transaction rollback, có %d đơn", count)
	}
}

func TestCancelBooking(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "cancel@test.vn")
	room := seedRoom(t, db, "304")
	dispatcher := &mockDispatcher{}

	svc := NewBookingService(db, dispatcher, testLogger())
	booking, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	})
	if err != nil {
		t.Fatalf("đặt phòng không thành công: %v", err)
	}

	cancelled, err := svc.CancelBooking(booking.ID, user.ID)
	if err != nil {
		t.Fatalf("hủy đơn không thành công: %v", err)
	}
	if cancelled.Status != constants.BookingStatusDaHuy {
		t.Errorf("đơn sau hủy phải DA_HUY, nhận %s", cancelled.Status)
	}

	// Không còn đơn active nào khác thì phòng về TRONG
	var savedRoom models.Room
	if err := db.First(&savedRoom, room.RoomId).Error; err != nil {
		t.Fatalf("không đọc lại được phòng: %v", err)
	}
	if savedRoom.Status != constants.RoomStatusTrong {
		t.Errorf("phòng phải về TRONG sau khi hủy đơn duy nhất, nhận %s", savedRoom.Status)
	}

	if len(dispatcher.events) != 2 || dispatcher.events[1].Type != notification.EventBookingCancelled {
		t.Errorf("phải phát event BOOKING_CANCELLED sau hủy, nhận %v", dispatcher.events)
	}
}

func TestCancelBookingForbiddenForNonOwner(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@test.vn")
	other := seedUser(t, db, "other@test.vn")
	room := seedRoom(t, db, "305")

	svc := NewBookingService(db, &mockDispatcher{}, testLogger())
	booking, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: owner.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	})
	if err != nil {
		t.Fatalf("đặt phòng không thành công: %v", err)
	}

	_, err = svc.CancelBooking(booking.ID, other.ID)
	if !errors.HasCode(err, errors.ErrCodeForbidden) {
		t.Fatalf("người không phải chủ đơn hủy phải trả FORBIDDEN, nhận: %v", err)
	}

	var saved models.Booking
	if err := db.First(&saved, booking.ID).Error; err != nil {
		t.Fatalf("không đọc lại được đơn: %v", err)
	}
	if saved.Status != constants.BookingStatusDaThue {
		t.Errorf("đơn phải giữ nguyên DA_THUE, nhận %s", saved.Status)
	}
}

func TestCancelKeepsRoomWhenOtherActiveBookingExists(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "tworooms@test.vn")
	room := seedRoom(t, db, "306")

	svc := NewBookingService(db, &mockDispatcher{}, testLogger())
	first, err := svc.CreateBooking(&dto.CreateBookingRequest{
		CustomerID: user.ID,
		RoomID:     room.RoomId,
		CheckIn:    "2025-06-01",
		CheckOut:   "2025-06-03",
	})
	if err != nil {
		t.Fatalf("đơn đầu không thành công: %v", err)
	}

	// Đơn nối đuôi thứ hai phải chèn trực tiếp vì phòng đã rời TRONG
	second := models.Booking{
		UserID:       user.ID,
		RoomID:       room.RoomId,
		CheckInDate:  "2025-06-03",
		CheckOutDate: "2025-06-05",
		Status:       constants.BookingStatusDaThue,
	}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("không chèn được đơn thứ hai: %v", err)
	}

	if _, err := svc.CancelBooking(first.ID, user.ID); err != nil {
		t.Fatalf("hủy đơn đầu không thành công: %v", err)
	}

	var savedRoom models.Room
	if err := db.First(&savedRoom, room.RoomId).Error; err != nil {
		t.Fatalf("không đọc lại được phòng: %v", err)
	}
	if savedRoom.Status == constants.RoomStatusTrong {
		t.Error("phòng còn đơn active khác thì không được về TRONG")
	}
}
