package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrientationDetails ข้อมูล intake แบบเต็ม 1 แถวต่อสมาชิกที่มีอีเมล
// แถว stub ถูกสร้างตอนจบ step 0 แล้ว update เต็มตอน step สุดท้าย
type OrientationDetails struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID            primitive.ObjectID `bson:"memberId" json:"memberId"`
	DateOfBirth         string             `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender              string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Ethnicity           string             `bson:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	ReasonForAttending  string             `bson:"reasonForAttending,omitempty" json:"reasonForAttending,omitempty"`

	// Step 1: ผู้ติดต่อฉุกเฉิน
	EmergencyContactName  string `bson:"emergencyContactName,omitempty" json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `bson:"emergencyContactPhone,omitempty" json:"emergencyContactPhone,omitempty"`
	EmergencyContactEmail string `bson:"emergencyContactEmail,omitempty" json:"emergencyContactEmail,omitempty"`

	// Step 2: คำถามวิจัย
	SourceOfDiscovery           string `bson:"sourceOfDiscovery,omitempty" json:"sourceOfDiscovery,omitempty"`
	ProblematicSubstances       string `bson:"problematicSubstances,omitempty" json:"problematicSubstances,omitempty"`
	CurrentlyInTreatment        string `bson:"currentlyInTreatment,omitempty" json:"currentlyInTreatment,omitempty"`
	CurrentTreatmentProgramme   string `bson:"currentTreatmentProgramme,omitempty" json:"currentTreatmentProgramme,omitempty"`
	PreviousTreatment           string `bson:"previousTreatment,omitempty" json:"previousTreatment,omitempty"`
	PreviousTreatmentProgrammes string `bson:"previousTreatmentProgrammes,omitempty" json:"previousTreatmentProgrammes,omitempty"`
	PreviousRecoveryGroups      string `bson:"previousRecoveryGroups,omitempty" json:"previousRecoveryGroups,omitempty"`
	PreviousRecoveryGroupsNames string `bson:"previousRecoveryGroupsNames,omitempty" json:"previousRecoveryGroupsNames,omitempty"`
	GoalsForAttending           string `bson:"goalsForAttending,omitempty" json:"goalsForAttending,omitempty"`
	AnythingElseImportant       string `bson:"anythingElseImportant,omitempty" json:"anythingElseImportant,omitempty"`
	HowElseHelp                 string `bson:"howElseHelp,omitempty" json:"howElseHelp,omitempty"`

	// Step 3: consent ทั้ง 5 ข้อ
	ConsentWhatsapp        bool `bson:"consentWhatsapp" json:"consentWhatsapp"`
	ConsentConfidentiality bool `bson:"consentConfidentiality" json:"consentConfidentiality"`
	ConsentAnonymity       bool `bson:"consentAnonymity" json:"consentAnonymity"`
	ConsentLiability       bool `bson:"consentLiability" json:"consentLiability"`
	ConsentVoluntary       bool `bson:"consentVoluntary" json:"consentVoluntary"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BasicInfoRequest payload ของ step 0 (ใช้ทั้ง path มีอีเมลและไม่มีอีเมล)
type BasicInfoRequest struct {
	IsNoEmail          bool   `json:"isNoEmail"`
	FirstName          string `json:"firstName" validate:"required"`
	LastName           string `json:"lastName" validate:"required"`
	Phone              string `json:"phone" validate:"required"`
	DateOfBirth        string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender             string `json:"gender" validate:"required"`
	Ethnicity          string `json:"ethnicity" validate:"required"`
	ReasonForAttending string `json:"reasonForAttending" validate:"required"`
}

// CompleteOrientationRequest payload ของ step สุดท้าย (step 1-3 รวมกัน)
// field "which programme" บังคับกรอกเฉพาะเมื่อคำตอบแม่เป็น "Yes"
type CompleteOrientationRequest struct {
	EmergencyContactName  string `json:"emergencyContactName" validate:"required"`
	EmergencyContactPhone string `json:"emergencyContactPhone" validate:"required"`
	EmergencyContactEmail string `json:"emergencyContactEmail" validate:"omitempty,email"`

	ReasonForAttending          string `json:"reasonForAttending"`
	SourceOfDiscovery           string `json:"sourceOfDiscovery" validate:"required"`
	ProblematicSubstances       string `json:"problematicSubstances" validate:"required"`
	CurrentlyInTreatment        string `json:"currentlyInTreatment" validate:"required,oneof=Yes No"`
	CurrentTreatmentProgramme   string `json:"currentTreatmentProgramme" validate:"required_if=CurrentlyInTreatment Yes"`
	PreviousTreatment           string `json:"previousTreatment" validate:"required,oneof=Yes No"`
	PreviousTreatmentProgrammes string `json:"previousTreatmentProgrammes" validate:"required_if=PreviousTreatment Yes"`
	PreviousRecoveryGroups      string `json:"previousRecoveryGroups" validate:"required,oneof=Yes No"`
	PreviousRecoveryGroupsNames string `json:"previousRecoveryGroupsNames" validate:"required_if=PreviousRecoveryGroups Yes"`
	GoalsForAttending           string `json:"goalsForAttending" validate:"required"`
	AnythingElseImportant       string `json:"anythingElseImportant"`
	HowElseHelp                 string `json:"howElseHelp"`

	ConsentWhatsapp        *bool `json:"consentWhatsapp" validate:"required"`
	ConsentConfidentiality *bool `json:"consentConfidentiality" validate:"required,eq=true"`
	ConsentAnonymity       *bool `json:"consentAnonymity" validate:"required,eq=true"`
	ConsentLiability       *bool `json:"consentLiability" validate:"required,eq=true"`
	ConsentVoluntary       *bool `json:"consentVoluntary" validate:"required,eq=true"`
}
