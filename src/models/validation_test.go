package models_test

import (
	"testing"

	"github.com/SaladRabbit/registerv2/src/models"
	"github.com/SaladRabbit/registerv2/src/utils"

	"github.com/stretchr/testify/assert"
)

func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestGeolocationValidation(t *testing.T) {
	t.Run("ZeroCoordinatesAreLegal", func(t *testing.T) {
		// เส้นศูนย์สูตร/เส้นเมริเดียนแรก - 0 คือพิกัดจริง ไม่ใช่ค่าว่าง
		loc := models.Geolocation{Latitude: floatPtr(0), Longitude: floatPtr(0)}
		assert.NoError(t, utils.ValidateStruct(loc))
	})

	t.Run("MissingCoordinateRejected", func(t *testing.T) {
		loc := models.Geolocation{Latitude: floatPtr(13.7563)}
		assert.Error(t, utils.ValidateStruct(loc))
	})

	t.Run("OutOfRangeRejected", func(t *testing.T) {
		loc := models.Geolocation{Latitude: floatPtr(95), Longitude: floatPtr(100)}
		assert.Error(t, utils.ValidateStruct(loc))
	})
}

func TestCheckInRequestValidation(t *testing.T) {
	t.Run("ValidWithEmail", func(t *testing.T) {
		req := models.CheckInRequest{
			Email:   "member@example.com",
			GroupID: "64f000000000000000000001",
		}
		assert.NoError(t, utils.ValidateStruct(req))
	})

	t.Run("ValidNoEmailPath", func(t *testing.T) {
		req := models.CheckInRequest{
			GroupID:   "64f000000000000000000001",
			IsNoEmail: true,
		}
		assert.NoError(t, utils.ValidateStruct(req))
	})

	t.Run("MissingEmailWithoutNoEmailFlag", func(t *testing.T) {
		// email ว่างได้เฉพาะเมื่อ isNoEmail=true
		req := models.CheckInRequest{
			GroupID: "64f000000000000000000001",
		}
		assert.Error(t, utils.ValidateStruct(req))
	})

	t.Run("MalformedEmail", func(t *testing.T) {
		req := models.CheckInRequest{
			Email:   "not-an-email",
			GroupID: "64f000000000000000000001",
		}
		assert.Error(t, utils.ValidateStruct(req))
	})

	t.Run("MissingGroupID", func(t *testing.T) {
		req := models.CheckInRequest{Email: "member@example.com"}
		assert.Error(t, utils.ValidateStruct(req))
	})
}

func TestBasicInfoRequestValidation(t *testing.T) {
	valid := models.BasicInfoRequest{
		FirstName:          "Ana",
		LastName:           "Silva",
		Phone:              "0812345678",
		DateOfBirth:        "1990-04-12",
		Gender:             "Female",
		Ethnicity:          "Asian",
		ReasonForAttending: "Support",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, utils.ValidateStruct(valid))
	})

	t.Run("DateOfBirthOptional", func(t *testing.T) {
		req := valid
		req.DateOfBirth = ""
		assert.NoError(t, utils.ValidateStruct(req))
	})

	t.Run("DateOfBirthMustBeISO", func(t *testing.T) {
		req := valid
		req.DateOfBirth = "12/04/1990"
		assert.Error(t, utils.ValidateStruct(req))
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		req := valid
		req.Phone = ""
		assert.Error(t, utils.ValidateStruct(req))
	})
}

func TestCompleteOrientationRequestValidation(t *testing.T) {
	valid := models.CompleteOrientationRequest{
		EmergencyContactName:   "Beto Silva",
		EmergencyContactPhone:  "0899999999",
		SourceOfDiscovery:      "Friend",
		ProblematicSubstances:  "Alcohol",
		CurrentlyInTreatment:   "No",
		PreviousTreatment:      "No",
		PreviousRecoveryGroups: "No",
		GoalsForAttending:      "Stay sober",
		ConsentWhatsapp:        boolPtr(false),
		ConsentConfidentiality: boolPtr(true),
		ConsentAnonymity:       boolPtr(true),
		ConsentLiability:       boolPtr(true),
		ConsentVoluntary:       boolPtr(true),
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, utils.ValidateStruct(valid))
	})

	t.Run("TreatmentProgrammeRequiredWhenInTreatment", func(t *testing.T) {
		req := valid
		req.CurrentlyInTreatment = "Yes"
		assert.Error(t, utils.ValidateStruct(req))

		req.CurrentTreatmentProgramme = "Outpatient clinic"
		assert.NoError(t, utils.ValidateStruct(req))
	})

	t.Run("RecoveryGroupNamesRequiredWhenYes", func(t *testing.T) {
		req := valid
		req.PreviousRecoveryGroups = "Yes"
		assert.Error(t, utils.ValidateStruct(req))

		req.PreviousRecoveryGroupsNames = "AA"
		assert.NoError(t, utils.ValidateStruct(req))
	})

	t.Run("YesNoAnswersAreStrict", func(t *testing.T) {
		req := valid
		req.PreviousTreatment = "Maybe"
		assert.Error(t, utils.ValidateStruct(req))
	})

	t.Run("MandatoryConsentsMustBeTrue", func(t *testing.T) {
		req := valid
		req.ConsentConfidentiality = boolPtr(false)
		assert.Error(t, utils.ValidateStruct(req))
	})

	t.Run("WhatsappConsentMayBeDeclined", func(t *testing.T) {
		req := valid
		req.ConsentWhatsapp = boolPtr(false)
		assert.NoError(t, utils.ValidateStruct(req))
	})

	t.Run("MissingConsentAnswer", func(t *testing.T) {
		req := valid
		req.ConsentVoluntary = nil
		assert.Error(t, utils.ValidateStruct(req))
	})

	t.Run("EmergencyContactEmailOptionalButChecked", func(t *testing.T) {
		req := valid
		req.EmergencyContactEmail = "bad-email"
		assert.Error(t, utils.ValidateStruct(req))

		req.EmergencyContactEmail = "beto@example.com"
		assert.NoError(t, utils.ValidateStruct(req))
	})
}
