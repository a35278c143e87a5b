package jobs

import (
	"context"
	"encoding/json"
	"log"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/services/orientation/email"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleWelcomeEmailTask ส่งเมลต้อนรับหลัง orientation เสร็จ
func HandleWelcomeEmailTask(sender email.MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload WelcomeEmailPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Payload decode error:", err)
			return err
		}

		id, err := primitive.ObjectIDFromHex(payload.MemberID)
		if err != nil {
			log.Println("⚠️ Invalid member id in welcome email task:", payload.MemberID)
			return nil // payload เสีย retry ไปก็ไม่หาย
		}

		var member models.Member
		err = DB.MemberCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("⚠️ Member not found. Skipping welcome email:", payload.MemberID)
				return nil
			}
			return err
		}
		if member.Email == "" {
			return nil
		}

		if err := sender.Send(member.Email, email.WelcomeSubject, email.WelcomeHTML(member.FirstName)); err != nil {
			log.Println("❌ Failed to send welcome email:", err)
			return err
		}

		log.Println("✅ Welcome email sent to:", member.Email)
		return nil
	}
}
