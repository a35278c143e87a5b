package checkin

import (
	"context"
	"math"
	"os"
	"strconv"
	"time"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRadiusMeters รัศมีที่ยอมให้เช็คอินกลุ่ม In-person (override ด้วย CHECKIN_RADIUS_M)
const DefaultRadiusMeters = 200.0

const earthRadiusM = 6371000.0

// RadiusMeters อ่านรัศมีจาก env - ค่าพัง/ติดลบ ใช้ default
func RadiusMeters() float64 {
	v := os.Getenv("CHECKIN_RADIUS_M")
	if v == "" {
		return DefaultRadiusMeters
	}
	r, err := strconv.ParseFloat(v, 64)
	if err != nil || r <= 0 {
		return DefaultRadiusMeters
	}
	return r
}

// HaversineMeters ระยะทาง great-circle ระหว่างพิกัดสองจุด หน่วยเมตร
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// ValidateGeofence ด่านตรวจพิกัดฝั่ง server - fail closed
// กลุ่ม Online ผ่านเสมอ / กลุ่ม In-person ต้องมีพิกัดครบทั้งสองฝั่งและอยู่ในรัศมี
// เช็คฝั่ง client อย่างเดียวปลอมได้ ด่านนี้คือของจริง
func ValidateGeofence(loc *models.Geolocation, group *models.Group, radiusM float64) bool {
	if group.Format == models.GroupFormatOnline {
		return true
	}
	if loc == nil || loc.Latitude == nil || loc.Longitude == nil ||
		group.Latitude == nil || group.Longitude == nil {
		return false
	}
	d := HaversineMeters(*loc.Latitude, *loc.Longitude, *group.Latitude, *group.Longitude)
	return d <= radiusM
}

// ISOWeekday แปลง time.Weekday (อาทิตย์=0) เป็นเลขวันแบบ ISO (จันทร์=1 .. อาทิตย์=7)
// ใช้ convention เดียวกันทั้งระบบ กัน off-by-one
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ValidateMeetingDay ด่านตรวจวัน - วันนี้ (UTC) ต้องตรงกับวันนัดของกลุ่ม
func ValidateMeetingDay(group *models.Group, now time.Time) bool {
	return ISOWeekday(now.UTC()) == group.MeetingDay
}

// TodayDateKey วันที่ปัจจุบันแบบ YYYY-MM-DD ตัดขอบวันที่ UTC เหมือนกันทุกจุด
func TodayDateKey() string {
	return time.Now().UTC().Format("2006-01-02")
}

// HasExistingAttendance ตรวจว่าเคยมีแถว attendance ของ (member, group, วัน) นี้แล้วหรือยัง
// query พังถือว่าตรวจไม่ได้ → คืน error ให้ caller หยุด (ไม่ fail open
// เพราะ unique index ใน database เป็น source of truth อีกชั้น)
func HasExistingAttendance(ctx context.Context, memberID, groupID primitive.ObjectID, dateKey string) (bool, error) {
	count, err := DB.AttendanceCollection.CountDocuments(ctx, bson.M{
		"memberId":       memberID,
		"groupId":        groupID,
		"attendanceDate": dateKey,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
