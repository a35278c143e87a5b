package checkin

import (
	"context"
	"errors"
	"log"
	"time"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// sentinel error ให้ controller แปลงเป็น status code ตามประเภท
var (
	ErrGroupNotFound       = errors.New("Group not found")
	ErrOutsideRadius       = errors.New("User is outside the allowed radius")
	ErrWrongDay            = errors.New("Group does not meet today")
	ErrDuplicateAttendance = errors.New("User has already checked in today")
	ErrCreateMember        = errors.New("Could not create new member")
	ErrCreateAttendance    = errors.New("Could not create attendance record")
)

// Result ผลจาก state machine - สถานะเดียวเสมอ พร้อม ref ที่ controller ต้องใส่ cookie
type Result struct {
	Status      string
	IsNewMember *bool
	MemberID    string // ว่างสำหรับ path ไม่มีอีเมล
	GroupID     string
}

// Store งานอ่าน/เขียนที่ state machine ต้องใช้ - แยกไว้ให้สลับเป็น fake ตอนเทส
type Store interface {
	FindGroup(ctx context.Context, id primitive.ObjectID) (*models.Group, error)
	ResolveMember(ctx context.Context, email string) (*Resolution, error)
	HasAttendance(ctx context.Context, memberID, groupID primitive.ObjectID, dateKey string) (bool, error)
	InsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error
}

type mongoStore struct{}

func (mongoStore) FindGroup(ctx context.Context, id primitive.ObjectID) (*models.Group, error) {
	var group models.Group
	if err := DB.GroupCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (mongoStore) ResolveMember(ctx context.Context, email string) (*Resolution, error) {
	return ResolveMember(ctx, email)
}

func (mongoStore) HasAttendance(ctx context.Context, memberID, groupID primitive.ObjectID, dateKey string) (bool, error) {
	return HasExistingAttendance(ctx, memberID, groupID, dateKey)
}

func (mongoStore) InsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error {
	_, err := DB.AttendanceCollection.InsertOne(ctx, rec)
	return err
}

// ProcessCheckIn จุดตัดสินใจเดียวของการเช็คอิน
func ProcessCheckIn(ctx context.Context, req *models.CheckInRequest) (*Result, error) {
	return processCheckIn(ctx, mongoStore{}, req, time.Now())
}

// processCheckIn ไล่ด่านตามลำดับตายตัว:
// หา group → geofence → วันนัด → ทางลัด no-email → resolve ตัวตน
// → เช็คซ้ำ → เช็ค orientation → insert attendance
func processCheckIn(ctx context.Context, st Store, req *models.CheckInRequest, now time.Time) (*Result, error) {
	groupID, err := primitive.ObjectIDFromHex(req.GroupID)
	if err != nil {
		return nil, ErrGroupNotFound
	}

	group, err := st.FindGroup(ctx, groupID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGroupNotFound
		}
		return nil, err // group lookup พัง = หยุดทั้ง flow (500)
	}

	// ด่านตรวจฝั่ง server - ต้องผ่านก่อนแตะข้อมูลใด ๆ
	if !ValidateGeofence(req.Geolocation, group, RadiusMeters()) {
		return nil, ErrOutsideRadius
	}
	if !ValidateMeetingDay(group, now) {
		return nil, ErrWrongDay
	}

	// path ไม่มีอีเมล จบตรงนี้ - ยังไม่ resolve ตัวตน ไม่สร้าง Member
	if req.IsNoEmail {
		return &Result{
			Status:  models.StatusNoEmailInfoRequired,
			GroupID: req.GroupID,
		}, nil
	}

	res, err := st.ResolveMember(ctx, req.Email)
	if err != nil {
		log.Println("❌ Identity resolution failed:", err)
		return nil, ErrCreateMember
	}
	member := res.Member

	// เช็คซ้ำก่อนตัดสินสถานะ - query พังถือเป็น hard error (fail closed)
	dateKey := now.UTC().Format("2006-01-02")
	dup, err := st.HasAttendance(ctx, member.ID, groupID, dateKey)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateAttendance
	}

	if !member.OrientationComplete {
		isNew := res.IsNew
		return &Result{
			Status:      models.StatusOrientationRequired,
			IsNewMember: &isNew,
			MemberID:    member.ID.Hex(),
			GroupID:     req.GroupID,
		}, nil
	}

	// happy path: บันทึก attendance พร้อม snapshot ข้อมูลสมาชิก ณ ตอนนี้
	record := models.AttendanceRecord{
		MemberID:         &member.ID,
		GroupID:          groupID,
		AttendanceDate:   dateKey,
		FirstName:        member.FirstName,
		LastName:         member.LastName,
		Phone:            member.Phone,
		DateOfBirth:      member.DateOfBirth,
		Gender:           member.Gender,
		Ethnicity:        member.Ethnicity,
		IsNoEmailCheckIn: false,
		ReceiptID:        uuid.NewString(),
		CreatedAt:        now,
	}
	if err := st.InsertAttendance(ctx, &record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// ชน unique index = มี request อื่นเช็คอินตัดหน้าในวันเดียวกัน
			return nil, ErrDuplicateAttendance
		}
		log.Println("❌ Attendance insert failed:", err)
		return nil, ErrCreateAttendance
	}

	return &Result{
		Status:   models.StatusCheckinComplete,
		MemberID: member.ID.Hex(),
		GroupID:  req.GroupID,
	}, nil
}
