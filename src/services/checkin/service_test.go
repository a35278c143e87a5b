package checkin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SaladRabbit/registerv2/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeStore จำลองชั้นข้อมูลให้ไล่ decision table ได้โดยไม่ต้องมี database
type fakeStore struct {
	group      *models.Group
	groupErr   error
	resolution *Resolution
	resolveErr error
	dup        bool
	dupErr     error
	insertErr  error

	resolveCalls int
	insertCalls  int
	inserted     *models.AttendanceRecord
}

func (f *fakeStore) FindGroup(ctx context.Context, id primitive.ObjectID) (*models.Group, error) {
	if f.groupErr != nil {
		return nil, f.groupErr
	}
	return f.group, nil
}

func (f *fakeStore) ResolveMember(ctx context.Context, email string) (*Resolution, error) {
	f.resolveCalls++
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.resolution, nil
}

func (f *fakeStore) HasAttendance(ctx context.Context, memberID, groupID primitive.ObjectID, dateKey string) (bool, error) {
	return f.dup, f.dupErr
}

func (f *fakeStore) InsertAttendance(ctx context.Context, rec *models.AttendanceRecord) error {
	f.insertCalls++
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = rec
	return nil
}

// monday กลุ่ม Online นัดวันจันทร์ + เวลา "ตอนนี้" ที่เป็นวันจันทร์ UTC
var monday = time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

func onlineMondayGroup() *models.Group {
	return &models.Group{
		ID:         primitive.NewObjectID(),
		Name:       "Online Monday",
		Format:     models.GroupFormatOnline,
		MeetingDay: 1,
	}
}

func memberWith(complete bool) *models.Member {
	return &models.Member{
		ID:                  primitive.NewObjectID(),
		Email:               "member@example.com",
		FirstName:           "Ana",
		OrientationComplete: complete,
	}
}

func checkInReq(groupID string) *models.CheckInRequest {
	return &models.CheckInRequest{Email: "member@example.com", GroupID: groupID}
}

func TestProcessCheckInGuards(t *testing.T) {
	hex := primitive.NewObjectID().Hex()

	t.Run("MalformedGroupIDIsNotFound", func(t *testing.T) {
		st := &fakeStore{}
		_, err := processCheckIn(context.Background(), st, checkInReq("not-a-hex-id"), monday)
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("UnknownGroupIsNotFound", func(t *testing.T) {
		st := &fakeStore{groupErr: mongo.ErrNoDocuments}
		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("GroupLookupFailureIsFatal", func(t *testing.T) {
		boom := errors.New("connection reset")
		st := &fakeStore{groupErr: boom}
		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("InPersonWithoutLocationIsOutsideRadius", func(t *testing.T) {
		g := onlineMondayGroup()
		g.Format = models.GroupFormatInPerson
		g.Latitude = floatPtr(13.7563)
		g.Longitude = floatPtr(100.5018)
		st := &fakeStore{group: g}

		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, ErrOutsideRadius)
		// ถูกปัดตกก่อนแตะตัวตน
		assert.Zero(t, st.resolveCalls)
	})

	t.Run("WrongMeetingDay", func(t *testing.T) {
		g := onlineMondayGroup()
		g.MeetingDay = 3
		st := &fakeStore{group: g}

		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, ErrWrongDay)
		assert.Zero(t, st.resolveCalls)
	})
}

func TestProcessCheckInStates(t *testing.T) {
	hex := primitive.NewObjectID().Hex()

	t.Run("NoEmailStopsBeforeIdentity", func(t *testing.T) {
		st := &fakeStore{group: onlineMondayGroup()}
		req := &models.CheckInRequest{GroupID: hex, IsNoEmail: true}

		result, err := processCheckIn(context.Background(), st, req, monday)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusNoEmailInfoRequired, result.Status)
		assert.Empty(t, result.MemberID)
		assert.Equal(t, hex, result.GroupID)
		assert.Zero(t, st.resolveCalls)
		assert.Zero(t, st.insertCalls)
	})

	t.Run("NewMemberNeedsOrientation", func(t *testing.T) {
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolution: &Resolution{Member: memberWith(false), IsNew: true},
		}

		result, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusOrientationRequired, result.Status)
		assert.NotNil(t, result.IsNewMember)
		assert.True(t, *result.IsNewMember)
		assert.NotEmpty(t, result.MemberID)
		// ยังไม่นับเป็นการมา - attendance เขียนตอนจบ orientation step 0
		assert.Zero(t, st.insertCalls)
	})

	t.Run("ReturningMemberWithUnfinishedOrientation", func(t *testing.T) {
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolution: &Resolution{Member: memberWith(false), IsNew: false},
		}

		result, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusOrientationRequired, result.Status)
		assert.NotNil(t, result.IsNewMember)
		assert.False(t, *result.IsNewMember)
		assert.Zero(t, st.insertCalls)
	})

	t.Run("CompletedMemberChecksIn", func(t *testing.T) {
		member := memberWith(true)
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolution: &Resolution{Member: member, IsNew: false},
		}

		result, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.NoError(t, err)
		assert.Equal(t, models.StatusCheckinComplete, result.Status)
		assert.Nil(t, result.IsNewMember)
		assert.Equal(t, 1, st.insertCalls)
		assert.Equal(t, member.ID, *st.inserted.MemberID)
		assert.Equal(t, "2026-08-24", st.inserted.AttendanceDate)
		assert.NotEmpty(t, st.inserted.ReceiptID)
		assert.False(t, st.inserted.IsNoEmailCheckIn)
	})

	t.Run("DuplicateCheckInWritesNothing", func(t *testing.T) {
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolution: &Resolution{Member: memberWith(true), IsNew: false},
			dup:        true,
		}

		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, ErrDuplicateAttendance)
		assert.Zero(t, st.insertCalls)
	})

	t.Run("DuplicateQueryFailureIsFatal", func(t *testing.T) {
		boom := errors.New("count failed")
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolution: &Resolution{Member: memberWith(true), IsNew: false},
			dupErr:     boom,
		}

		// ตรวจซ้ำไม่ได้ = หยุด ไม่เสี่ยง insert ซ้ำ
		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, st.insertCalls)
	})

	t.Run("ResolutionFailure", func(t *testing.T) {
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolveErr: errors.New("insert failed"),
		}

		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, ErrCreateMember)
	})

	t.Run("InsertRaceMapsToDuplicate", func(t *testing.T) {
		// unique index ชนตอน insert = อีก request เช็คอินตัดหน้าไปแล้ว
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolution: &Resolution{Member: memberWith(true), IsNew: false},
			insertErr:  mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}},
		}

		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, ErrDuplicateAttendance)
	})

	t.Run("InsertFailure", func(t *testing.T) {
		st := &fakeStore{
			group:      onlineMondayGroup(),
			resolution: &Resolution{Member: memberWith(true), IsNew: false},
			insertErr:  errors.New("write concern error"),
		}

		_, err := processCheckIn(context.Background(), st, checkInReq(hex), monday)
		assert.ErrorIs(t, err, ErrCreateAttendance)
	})
}
