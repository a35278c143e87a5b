package database

import (
	"log"

	"github.com/hibiken/asynq"
)

var AsynqClient *asynq.Client

// InitAsynq เปิด asynq client สำหรับคิวงานเบื้องหลัง - ต้องมี Redis ก่อน
// ไม่มี Redis ก็ไม่เปิด งานในคิว (เมลต้อนรับ) จะถูกข้ามแทน
func InitAsynq() {
	if RedisClient == nil || RedisURI == "" {
		log.Println("⚠️ Redis not available. Skipping asynq client.")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Println("✅ Asynq client ready")
}
