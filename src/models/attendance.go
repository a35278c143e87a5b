package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceRecord บันทึกการเข้าร่วม 1 แถวต่อ (สมาชิก, กลุ่ม, วัน)
// memberId เป็น nil = เช็คอินแบบไม่มีอีเมล (ไม่ผูกกับ Member)
// ข้อมูล demographic ถูก snapshot ไว้ ณ เวลาเช็คอิน
type AttendanceRecord struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	MemberID           *primitive.ObjectID `bson:"memberId,omitempty" json:"memberId,omitempty"`
	GroupID            primitive.ObjectID  `bson:"groupId" json:"groupId"`
	AttendanceDate     string              `bson:"attendanceDate" json:"attendanceDate"` // YYYY-MM-DD (UTC)
	FirstName          string              `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName           string              `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Phone              string              `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth        string              `bson:"dob,omitempty" json:"dob,omitempty"`
	Gender             string              `bson:"gender,omitempty" json:"gender,omitempty"`
	Ethnicity          string              `bson:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	ReasonForAttending string              `bson:"reasonForAttending,omitempty" json:"reasonForAttending,omitempty"`
	IsNoEmailCheckIn   bool                `bson:"isNoEmailCheckIn" json:"isNoEmailCheckIn"`
	ReceiptID          string              `bson:"receiptId,omitempty" json:"receiptId,omitempty"` // uuid สำหรับอ้างอิงฝั่ง client
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
}
