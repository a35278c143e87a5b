package orientation

import (
	"context"
	"log"
	"time"

	DB "github.com/SaladRabbit/registerv2/src/database"
	"github.com/SaladRabbit/registerv2/src/jobs"
	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/services/checkin"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// store งานเขียนของ wizard - แยกไว้ให้สลับเป็น fake ตอนเทส
// ห้ามคืน duplicate-key error จากใน transaction: write error ใด ๆ
// ทำให้ Mongo abort ทั้ง transaction ฝั่ง server คืนมาก็กู้ไม่ได้แล้ว
type store interface {
	UpdateMember(ctx context.Context, id primitive.ObjectID, set bson.M) error
	UpsertDetails(ctx context.Context, memberID primitive.ObjectID, set bson.M, now time.Time) error
	HasAttendance(ctx context.Context, memberID, groupID primitive.ObjectID, dateKey string) (bool, error)
	InsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error
}

type mongoStore struct{}

func (mongoStore) UpdateMember(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	_, err := DB.MemberCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (mongoStore) UpsertDetails(ctx context.Context, memberID primitive.ObjectID, set bson.M, now time.Time) error {
	_, err := DB.OrientationCollection.UpdateOne(ctx,
		bson.M{"memberId": memberID},
		bson.M{"$set": set, "$setOnInsert": bson.M{"createdAt": now}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (mongoStore) HasAttendance(ctx context.Context, memberID, groupID primitive.ObjectID, dateKey string) (bool, error) {
	return checkin.HasExistingAttendance(ctx, memberID, groupID, dateKey)
}

func (mongoStore) InsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error {
	_, err := DB.AttendanceCollection.InsertOne(ctx, rec)
	return err
}

// SubmitNoEmailInfo จบ flow ไม่มีอีเมล - บันทึก attendance นิรนามแถวเดียวแล้วจบ
// ไม่ผูกกับ Member ใด ๆ (memberId เป็น nil, isNoEmailCheckIn = true)
func SubmitNoEmailInfo(ctx context.Context, groupID string, req *models.BasicInfoRequest) error {
	gID, err := primitive.ObjectIDFromHex(groupID)
	if err != nil {
		return err
	}

	record := models.AttendanceRecord{
		GroupID:            gID,
		AttendanceDate:     checkin.TodayDateKey(),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		Ethnicity:          req.Ethnicity,
		ReasonForAttending: req.ReasonForAttending,
		IsNoEmailCheckIn:   true,
		ReceiptID:          uuid.NewString(),
		CreatedAt:          time.Now(),
	}
	_, err = DB.AttendanceCollection.InsertOne(ctx, record)
	return err
}

// SubmitBasicInfo จบ step 0 ของ path มีอีเมล - ทำ 3 อย่างใน transaction เดียว:
// update ข้อมูลพื้นฐานของ member, upsert แถว stub ใน orientation_details,
// และ insert attendance (บันทึกการมา ณ จุดเริ่ม intake ไม่ต้องรอทำแบบสอบถามจบ)
func SubmitBasicInfo(ctx context.Context, memberID, groupID string, req *models.BasicInfoRequest) error {
	mID, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return err
	}
	gID, err := primitive.ObjectIDFromHex(groupID)
	if err != nil {
		return err
	}

	session, err := DB.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, basicInfoTxn(sc, mongoStore{}, mID, gID, req, time.Now())
	})
	return err
}

// basicInfoTxn ลำดับงานใน transaction ของ step 0
func basicInfoTxn(ctx context.Context, st store, mID, gID primitive.ObjectID, req *models.BasicInfoRequest, now time.Time) error {
	// 1. update ข้อมูลพื้นฐานของ member
	err := st.UpdateMember(ctx, mID, bson.M{
		"firstName":   req.FirstName,
		"lastName":    req.LastName,
		"phone":       req.Phone,
		"dateOfBirth": req.DateOfBirth,
		"gender":      req.Gender,
		"ethnicity":   req.Ethnicity,
		"updatedAt":   now,
	})
	if err != nil {
		return err
	}

	// 2. upsert แถว stub (step 0 ถูกยิงซ้ำได้ - ห้ามได้ details สองแถว)
	err = st.UpsertDetails(ctx, mID, bson.M{
		"dateOfBirth":        req.DateOfBirth,
		"gender":             req.Gender,
		"ethnicity":          req.Ethnicity,
		"reasonForAttending": req.ReasonForAttending,
		"updatedAt":          now,
	}, now)
	if err != nil {
		return err
	}

	// 3. insert attendance ผูกกับ member - เช็คก่อนว่ามีแถววันนี้แล้วหรือยัง
	// จะปล่อยให้ชน unique index แล้วค่อยข้ามไม่ได้ เพราะ insert ที่พัง
	// ทำให้ transaction ทั้งก้อน abort รวมถึงข้อ 1-2 ด้วย
	dup, err := st.HasAttendance(ctx, mID, gID, now.UTC().Format("2006-01-02"))
	if err != nil {
		return err
	}
	if dup {
		return nil
	}

	record := models.AttendanceRecord{
		MemberID:           &mID,
		GroupID:            gID,
		AttendanceDate:     now.UTC().Format("2006-01-02"),
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Phone:              req.Phone,
		DateOfBirth:        req.DateOfBirth,
		Gender:             req.Gender,
		Ethnicity:          req.Ethnicity,
		ReasonForAttending: req.ReasonForAttending,
		IsNoEmailCheckIn:   false,
		ReceiptID:          uuid.NewString(),
		CreatedAt:          now,
	}
	return st.InsertAttendance(ctx, &record)
}

// CompleteOrientation step สุดท้าย - เติม orientation_details ให้ครบ
// แล้ว flip orientationComplete ใน transaction เดียว (flag นี้คือ source of truth)
func CompleteOrientation(ctx context.Context, memberID string, req *models.CompleteOrientationRequest) error {
	mID, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return err
	}

	session, err := DB.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, completeTxn(sc, mongoStore{}, mID, req, time.Now())
	})
	if err != nil {
		return err
	}

	// ส่งเมลต้อนรับแบบ best effort - คิวพังไม่ทำให้ orientation fail
	if err := jobs.EnqueueWelcomeEmail(memberID); err != nil {
		log.Println("⚠️ Failed to enqueue welcome email:", err)
	}

	return nil
}

// completeTxn ลำดับงานใน transaction ของ step สุดท้าย
func completeTxn(ctx context.Context, st store, mID primitive.ObjectID, req *models.CompleteOrientationRequest, now time.Time) error {
	set := bson.M{
		"emergencyContactName":        req.EmergencyContactName,
		"emergencyContactPhone":       req.EmergencyContactPhone,
		"emergencyContactEmail":       req.EmergencyContactEmail,
		"sourceOfDiscovery":           req.SourceOfDiscovery,
		"problematicSubstances":       req.ProblematicSubstances,
		"currentlyInTreatment":        req.CurrentlyInTreatment,
		"currentTreatmentProgramme":   req.CurrentTreatmentProgramme,
		"previousTreatment":           req.PreviousTreatment,
		"previousTreatmentProgrammes": req.PreviousTreatmentProgrammes,
		"previousRecoveryGroups":      req.PreviousRecoveryGroups,
		"previousRecoveryGroupsNames": req.PreviousRecoveryGroupsNames,
		"goalsForAttending":           req.GoalsForAttending,
		"anythingElseImportant":       req.AnythingElseImportant,
		"howElseHelp":                 req.HowElseHelp,
		"consentWhatsapp":             derefBool(req.ConsentWhatsapp),
		"consentConfidentiality":      derefBool(req.ConsentConfidentiality),
		"consentAnonymity":            derefBool(req.ConsentAnonymity),
		"consentLiability":            derefBool(req.ConsentLiability),
		"consentVoluntary":            derefBool(req.ConsentVoluntary),
		"updatedAt":                   now,
	}
	if req.ReasonForAttending != "" {
		set["reasonForAttending"] = req.ReasonForAttending
	}

	// หาแถวที่สร้างไว้ตอน step 0 (upsert กันกรณี stub หาย)
	if err := st.UpsertDetails(ctx, mID, set, now); err != nil {
		return err
	}

	return st.UpdateMember(ctx, mID, bson.M{
		"orientationComplete": true,
		"updatedAt":           now,
	})
}

func derefBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
