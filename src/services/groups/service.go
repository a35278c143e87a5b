package groups

import (
	"context"
	"sort"
	"time"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/services/checkin"
	"github.com/SaladRabbit/registerv2/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetAllGroups ดึงกลุ่มทั้งหมด - ลอง cache ก่อน (ข้อมูลอ้างอิง เปลี่ยนไม่บ่อย)
func GetAllGroups(ctx context.Context) ([]models.Group, error) {
	if cached, ok := utils.GetCachedGroups(); ok {
		return cached, nil
	}

	cursor, err := DB.GroupCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	if err := utils.CacheGroups(groups); err != nil {
		// cache พังไม่ใช่เหตุให้ request พัง
		_ = err
	}
	return groups, nil
}

// GetGroupByID ดึงกลุ่มเดียวตาม id
func GetGroupByID(ctx context.Context, id string) (*models.Group, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var group models.Group
	if err := DB.GroupCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

// CreateGroup เพิ่มกลุ่มใหม่ (ใช้ seed ข้อมูลอ้างอิง) แล้วล้าง cache
func CreateGroup(ctx context.Context, group *models.Group) error {
	group.ID = primitive.NewObjectID()
	_, err := DB.GroupCollection.InsertOne(ctx, group)
	if err != nil {
		return err
	}
	utils.InvalidateGroupCache()
	return nil
}

// SortByDistance เติม distanceKm จากพิกัดผู้ใช้แล้วเรียงใกล้→ไกล
// กลุ่ม Online ไม่มีพิกัด ไปอยู่ท้ายสุดเสมอ
func SortByDistance(groups []models.Group, lat, lon float64) []models.GroupWithDistance {
	result := make([]models.GroupWithDistance, 0, len(groups))
	for _, g := range groups {
		gw := models.GroupWithDistance{Group: g}
		if g.Latitude != nil && g.Longitude != nil {
			km := checkin.HaversineMeters(lat, lon, *g.Latitude, *g.Longitude) / 1000
			gw.DistanceKm = &km
		}
		result = append(result, gw)
	}

	sort.SliceStable(result, func(i, j int) bool {
		di, dj := result[i].DistanceKm, result[j].DistanceKm
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		return *di < *dj
	})
	return result
}

// DayProximity จำนวนวันที่ต้องรอจากวันนี้ถึงวันนัดของกลุ่ม (0 = นัดวันนี้)
func DayProximity(meetingDay, todayISO int) int {
	diff := (meetingDay - todayISO + 7) % 7
	return diff
}

// SortByDay เรียงกลุ่มตามความใกล้ของวันนัด - กลุ่มที่นัดวันนี้มาก่อน
// dayOfWeek <= 0 ใช้วันปัจจุบัน (UTC, ISO 1-7)
func SortByDay(groups []models.Group, dayOfWeek int) []models.Group {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		dayOfWeek = checkin.ISOWeekday(time.Now().UTC())
	}

	sorted := make([]models.Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DayProximity(sorted[i].MeetingDay, dayOfWeek) < DayProximity(sorted[j].MeetingDay, dayOfWeek)
	})
	return sorted
}

// GroupsByDistance ดึงทุกกลุ่มพร้อมระยะทาง เรียงจากใกล้สุด
func GroupsByDistance(ctx context.Context, lat, lon float64) ([]models.GroupWithDistance, error) {
	groups, err := GetAllGroups(ctx)
	if err != nil {
		return nil, err
	}
	return SortByDistance(groups, lat, lon), nil
}

// GroupsByDay ดึงทุกกลุ่มเรียงตามวันนัดที่ใกล้ถึงที่สุด
func GroupsByDay(ctx context.Context, dayOfWeek int) ([]models.Group, error) {
	groups, err := GetAllGroups(ctx)
	if err != nil {
		return nil, err
	}
	return SortByDay(groups, dayOfWeek), nil
}
