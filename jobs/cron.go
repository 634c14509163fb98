package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB) error {
	// Cron job chạy lúc 0h mỗi ngày: quét ranh giới nhận/trả phòng
	_, err := c.AddFunc("0 0 * * *", func() {
		today := time.Now().Format("2006-01-02")
		log.Printf("Đang chạy quét trạng thái đặt phòng cho ngày: %s", today)
		if err := Reconcile(db, today); err != nil {
			log.Printf("Lỗi khi quét trạng thái đặt phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
