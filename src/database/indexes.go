package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes สร้าง unique index ที่ปิดช่อง race ของการเช็คอินพร้อมกัน
//   - members.email ต้อง unique (เฉพาะเอกสารที่มี email)
//   - attendance_register ห้ามซ้ำต่อ (memberId, groupId, attendanceDate)
//     เฉพาะแถวที่มี memberId - แถว no-email ไม่ติดกติกานี้
func EnsureIndexes(ctx context.Context) error {
	_, err := MemberCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"email": bson.M{"$exists": true, "$type": "string"}}),
	})
	if err != nil {
		return err
	}

	_, err = AttendanceCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "memberId", Value: 1},
			{Key: "groupId", Value: 1},
			{Key: "attendanceDate", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"memberId": bson.M{"$exists": true}}),
	})
	return err
}
