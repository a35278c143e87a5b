package models

// สถานะหลังเช็คอิน - เก็บใน cookie "app_status" ให้ middleware ใช้บังคับหน้า
const (
	StatusNoEmailInfoRequired = "NO_EMAIL_INFO_REQUIRED"
	StatusOrientationRequired = "ORIENTATION_REQUIRED"
	StatusCheckinComplete     = "CHECKIN_COMPLETE"
)

// Geolocation พิกัดจาก client
// ใช้ pointer เพราะ 0 เป็นพิกัดจริง (เส้นศูนย์สูตร/เส้นเมริเดียนแรก) ไม่ใช่ค่าว่าง
type Geolocation struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// CheckInRequest คำขอเช็คอินจากหน้าแรก
// email ว่างได้เฉพาะกรณี isNoEmail=true
type CheckInRequest struct {
	Email       string       `json:"email" validate:"required_if=IsNoEmail false,omitempty,email"`
	GroupID     string       `json:"groupId" validate:"required"`
	IsNoEmail   bool         `json:"isNoEmail"`
	Geolocation *Geolocation `json:"geolocation"`
}

// CheckInResponse ผลของ state machine - ได้สถานะเดียวเสมอ
type CheckInResponse struct {
	Status      string `json:"status"`
	IsNewMember *bool  `json:"isNewMember,omitempty"`
}
