package utils

import (
	"context"
	"encoding/json"
	"time"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/models"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const groupCacheKey = "groups:all"
const groupCacheTTL = 60 * time.Second

// ensureClient คืน Redis client ที่ database package เปิดไว้ - nil คือไม่ได้เปิด
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// CacheGroups เก็บ group list ลง Redis ชั่วคราว - ไม่มี Redis ถือว่าสำเร็จเปล่า ๆ
func CacheGroups(groups []models.Group) error {
	client := ensureClient()
	if client == nil {
		// ไม่มี Redis ใน dev mode - ข้าม
		return nil
	}

	data, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	return client.Set(Ctx, groupCacheKey, data, groupCacheTTL).Err()
}

// GetCachedGroups อ่าน group list จาก cache - (nil, false) คือ cache miss
func GetCachedGroups() ([]models.Group, bool) {
	client := ensureClient()
	if client == nil {
		return nil, false
	}

	data, err := client.Get(Ctx, groupCacheKey).Bytes()
	if err != nil {
		return nil, false // redis.Nil หรือ error อื่น ถือเป็น miss ทั้งหมด
	}

	var groups []models.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, false
	}
	return groups, true
}

// InvalidateGroupCache ลบ cache หลังมีการเพิ่ม/แก้ group
func InvalidateGroupCache() {
	client := ensureClient()
	if client == nil {
		return
	}
	_ = client.Del(Ctx, groupCacheKey).Err()
}
