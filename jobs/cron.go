package jobs

import (
	"context"
	"log"

	"github.com/BimsaraU/SkyNest-sub000/utils"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// searchCacheKeys là các cache bị làm mới theo lịch.
// Booking pending không tự hết hạn và NoShow chỉ đánh tay,
// nên cron ở đây chỉ lo dọn cache chứ không đụng vào trạng thái booking.
var searchCacheKeys = []string{"rooms:all", "rooms:search", "bookings:all"}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, rdb *redis.Client) error {
	// Dọn cache danh sách lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		if rdb == nil {
			return
		}
		if err := rdb.Del(context.Background(), searchCacheKeys...).Err(); err != nil {
			utils.LogError("Failed to refresh list caches: %v", err)
			return
		}
		utils.LogInfo("List caches refreshed")
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
