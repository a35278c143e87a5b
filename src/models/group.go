package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// รูปแบบการพบกลุ่ม
const (
	GroupFormatOnline   = "Online"
	GroupFormatInPerson = "In-person"
)

// Group กลุ่มที่นัดพบประจำสัปดาห์ (ข้อมูลอ้างอิง อ่านอย่างเดียวสำหรับ flow เช็คอิน)
type Group struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Format      string             `bson:"format" json:"format" validate:"required,oneof=Online In-person"`
	Latitude    *float64           `bson:"latitude,omitempty" json:"latitude,omitempty" validate:"required_if=Format In-person"`
	Longitude   *float64           `bson:"longitude,omitempty" json:"longitude,omitempty" validate:"required_if=Format In-person"`
	MeetingDay  int                `bson:"meetingDay" json:"meetingDay" validate:"required,min=1,max=7"` // ISO: 1=จันทร์ .. 7=อาทิตย์
	MeetingTime string             `bson:"meetingTime" json:"meetingTime"`                               // เช่น "19:00"
}

// GroupWithDistance Group พร้อมระยะทางที่คำนวณจากพิกัดผู้ใช้ (สำหรับ endpoint by-distance)
type GroupWithDistance struct {
	Group      `bson:",inline"`
	DistanceKm *float64 `json:"distanceKm,omitempty"` // nil สำหรับกลุ่ม Online
}
