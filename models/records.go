package models

import "time"

// Diagnosis is an ICD-10 coded diagnosis attached to a medical record.
type Diagnosis struct {
	Code     string `bson:"code,omitempty" json:"code,omitempty"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Severity string `bson:"severity,omitempty" json:"severity,omitempty"` // mild, moderate, severe
}

type Medication struct {
	Name         string     `bson:"name,omitempty" json:"name,omitempty"`
	Dosage       string     `bson:"dosage,omitempty" json:"dosage,omitempty"`
	Frequency    string     `bson:"frequency,omitempty" json:"frequency,omitempty"`
	StartDate    *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
	PrescribedBy string     `bson:"prescribedBy,omitempty" json:"prescribedBy,omitempty"`
}

type Allergy struct {
	Allergen string `bson:"allergen,omitempty" json:"allergen,omitempty"`
	Reaction string `bson:"reaction,omitempty" json:"reaction,omitempty"`
	Severity string `bson:"severity,omitempty" json:"severity,omitempty"` // up to life-threatening
}

type Attachment struct {
	FileName   string     `bson:"fileName,omitempty" json:"fileName,omitempty"`
	FileURL    string     `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
	FileType   string     `bson:"fileType,omitempty" json:"fileType,omitempty"`
	UploadDate *time.Time `bson:"uploadDate,omitempty" json:"uploadDate,omitempty"`
}

type MedicalRecord struct {
	RecordID     string       `bson:"recordId" json:"recordId"`
	PatientID    string       `bson:"patientId" json:"patientId" binding:"required"`
	RecordType   string       `bson:"recordType" json:"recordType" binding:"required"` // diagnosis, medication, allergy, lab-result, history, other
	Title        string       `bson:"title" json:"title" binding:"required"`
	Description  string       `bson:"description,omitempty" json:"description,omitempty"`
	Diagnosis    Diagnosis    `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Medications  []Medication `bson:"medications,omitempty" json:"medications,omitempty"`
	Allergies    []Allergy    `bson:"allergies,omitempty" json:"allergies,omitempty"`
	Attachments  []Attachment `bson:"attachments,omitempty" json:"attachments,omitempty"`
	AddedBy      string       `bson:"addedBy" json:"addedBy" binding:"required"` // therapistId
	IsActive     bool         `bson:"isActive" json:"isActive"`
	Confidential bool         `bson:"confidential" json:"confidential"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}
