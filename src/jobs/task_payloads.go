package jobs

import (
	"encoding/json"
	"log"

	DB "github.com/SaladRabbit/registerv2/src/database"

	"github.com/hibiken/asynq"
)

const TypeWelcomeEmail = "orientation:welcome_email"

type WelcomeEmailPayload struct {
	MemberID string `json:"member_id"`
}

func NewWelcomeEmailTask(memberID string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{MemberID: memberID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeWelcomeEmail, payload), nil
}

// EnqueueWelcomeEmail ยัด task ส่งเมลต้อนรับเข้าคิว
// ไม่มี asynq client (dev mode ไม่มี Redis) ก็ข้ามไปเฉย ๆ
func EnqueueWelcomeEmail(memberID string) error {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Asynq client not initialized. Skipping welcome email for member:", memberID)
		return nil
	}

	task, err := NewWelcomeEmailTask(memberID)
	if err != nil {
		return err
	}
	_, err = DB.AsynqClient.Enqueue(task, asynq.MaxRetry(3))
	return err
}
