package checkin

import (
	"context"
	"fmt"
	"strings"
	"time"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Resolution ผลการ resolve ตัวตนจากอีเมล
type Resolution struct {
	Member *models.Member
	IsNew  bool
}

// ResolveMember หา member จากอีเมล ไม่เจอก็สร้างแถวขั้นต่ำ (email อย่างเดียว)
// เทียบอีเมลแบบ lowercase เสมอ - unique index บน email กันสร้างซ้ำตอนยิงพร้อมกัน
// ถ้า insert ชน duplicate key แปลว่ามีคนสร้างตัดหน้า → อ่านกลับมาใช้ record นั้นแทน
func ResolveMember(ctx context.Context, email string) (*Resolution, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	var member models.Member
	err := DB.MemberCollection.FindOne(ctx, bson.M{"email": email}).Decode(&member)
	if err == nil {
		return &Resolution{Member: &member, IsNew: false}, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := time.Now()
	newMember := models.Member{
		Email:               email,
		OrientationComplete: false,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res, err := DB.MemberCollection.InsertOne(ctx, newMember)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// แพ้ race ให้ request อื่น - member มีแล้ว ใช้ของเดิม
			var existing models.Member
			if ferr := DB.MemberCollection.FindOne(ctx, bson.M{"email": email}).Decode(&existing); ferr != nil {
				return nil, ferr
			}
			return &Resolution{Member: &existing, IsNew: false}, nil
		}
		return nil, err
	}

	newMember.ID = res.InsertedID.(primitive.ObjectID)
	return &Resolution{Member: &newMember, IsNew: true}, nil
}
