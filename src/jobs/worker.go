package jobs

import (
	"log"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/services/orientation/email"

	"github.com/hibiken/asynq"
)

// StartWorker รัน asynq worker สำหรับงานเบื้องหลัง (เมลต้อนรับ)
// เรียกใน goroutine แยกจาก main - ไม่มี Redis หรือ SMTP env ไม่ครบ ก็ไม่รัน
func StartWorker() {
	if DB.RedisURI == "" || DB.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	sender, err := email.NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("⚠️ Worker disabled:", err)
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeWelcomeEmail, HandleWelcomeEmailTask(sender))

	log.Println("✅ Background worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Worker stopped:", err)
	}
}
