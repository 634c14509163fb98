package jobs

import (
	"hotel-booking/constants"
	"hotel-booking/models"
	"hotel-booking/validator"

	"gorm.io/gorm"
)

// Reconcile quét ranh giới ngày cho toàn bộ đơn đặt phòng. Ngày "hôm nay"
// được truyền vào tường minh (YYYY-MM-DD) để job chạy lại được và test
// được mà không đụng đồng hồ hệ thống. Mọi update đều kèm điều kiện
// trạng thái hiện tại nên chạy lặp là no-op.
func Reconcile(db *gorm.DB, today string) error {
	if err := validator.ValidateDate(today); err != nil {
		return err
	}

	if err := advanceCheckIns(db, today); err != nil {
		return err
	}
	return releaseExpired(db, today)
}

// advanceCheckIns chuyển các đơn đến ngày nhận phòng sang DANG_SU_DUNG
func advanceCheckIns(db *gorm.DB, today string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var checkIns []models.Booking
		err := tx.Where("status = ? AND check_in_date = ?",
			constants.BookingStatusDaThue, today).Find(&checkIns).Error
		if err != nil {
			return err
		}

		for _, b := range checkIns {
			err := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", b.ID, constants.BookingStatusDaThue).
				Update("status", constants.BookingStatusDangSuDung).Error
			if err != nil {
				return err
			}
			err = tx.Model(&models.Room{}).
				Where("room_id = ?", b.RoomID).
				Update("status", constants.RoomStatusDangSuDung).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// releaseExpired đóng các đơn đã qua ngày trả phòng và trả phòng về TRONG
// nếu không còn đơn active nào khác giữ phòng
func releaseExpired(db *gorm.DB, today string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var expired []models.Booking
		err := tx.Where("status IN ? AND check_out_date < ?",
			constants.ActiveBookingStatuses, today).Find(&expired).Error
		if err != nil {
			return err
		}

		for _, b := range expired {
			err := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", b.ID, b.Status).
				Update("status", constants.BookingStatusHoanThanh).Error
			if err != nil {
				return err
			}

			var remaining int64
			err = tx.Model(&models.Booking{}).
				Where("room_id = ? AND id <> ? AND status IN ?",
					b.RoomID, b.ID, constants.ActiveBookingStatuses).
				Count(&remaining).Error
			if err != nil {
				return err
			}
			if remaining == 0 {
				err = tx.Model(&models.Room{}).
					Where("room_id = ?", b.RoomID).
					Update("status", constants.RoomStatusTrong).Error
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}
