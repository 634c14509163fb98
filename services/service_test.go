package services

import (
	"testing"

	"hotel-booking/constants"
	"hotel-booking/models"
	"hotel-booking/services/logger"
	"hotel-booking/services/notification"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("không mở được sqlite in-memory: %v", err)
	}

	// In-memory sqlite gắn với từng connection, giới hạn pool về một
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("không lấy được sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.User{}, &models.Room{}, &models.Booking{}, &models.Invoice{})
	if err != nil {
		t.Fatalf("không migrate được schema: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{
		Name:     "Khách Test",
		Email:    email,
		Username: email,
		Password: "x",
		Role:     constants.RoleCustomer,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("không tạo được user: %v", err)
	}
	return &user
}

func seedRoom(t *testing.T, db *gorm.DB, roomNumber string) *models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber: roomNumber,
		Floor:      1,
		RoomType:   "Phòng đôi",
		People:     2,
		Price:      500000,
		Status:     constants.RoomStatusTrong,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("không tạo được phòng: %v", err)
	}
	return &room
}

// mockDispatcher ghi lại các event được phát để kiểm tra hậu-commit
type mockDispatcher struct {
	events []notification.Event
}

func (d *mockDispatcher) Dispatch(events []notification.Event) {
	d.events = append(d.events, events...)
}

func testLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}
