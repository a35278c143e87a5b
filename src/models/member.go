package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member สมาชิกของกลุ่ม
// สร้างครั้งแรกด้วย email อย่างเดียว แล้วค่อยเติมข้อมูลระหว่าง orientation
type Member struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email               string             `bson:"email,omitempty" json:"email,omitempty"`
	FirstName           string             `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName            string             `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Phone               string             `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth         string             `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Gender              string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Ethnicity           string             `bson:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	OrientationComplete bool               `bson:"orientationComplete" json:"orientationComplete"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}
