package models

import "time"

// Profile carries basic demographic fields shared by patients and therapists.
type Profile struct {
	Age            int    `bson:"age,omitempty" json:"age,omitempty"`
	Gender         string `bson:"gender,omitempty" json:"gender,omitempty"`
	Specialization string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Experience     int    `bson:"experience,omitempty" json:"experience,omitempty"`
}

// ContactInfo is the shared contact block.
type ContactInfo struct {
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Place   string `bson:"place,omitempty" json:"place,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type Patient struct {
	PatientID   string      `bson:"patientId" json:"patientId" binding:"required"`
	FirstName   string      `bson:"firstName" json:"firstName" binding:"required"`
	LastName    string      `bson:"lastName" json:"lastName" binding:"required"`
	Email       string      `bson:"email" json:"email" binding:"required,email"`
	Profile     Profile     `bson:"profile,omitempty" json:"profile,omitempty"`
	ContactInfo ContactInfo `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}

type Therapist struct {
	TherapistID string      `bson:"therapistId" json:"therapistId" binding:"required"`
	FirstName   string      `bson:"firstName" json:"firstName" binding:"required"`
	LastName    string      `bson:"lastName" json:"lastName" binding:"required"`
	Email       string      `bson:"email" json:"email" binding:"required,email"`
	Type        string      `bson:"type" json:"type"`
	Profile     Profile     `bson:"profile,omitempty" json:"profile,omitempty"`
	ContactInfo ContactInfo `bson:"contactInfo,omitempty" json:"contactInfo,omitempty"`
	CreatedAt   time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updatedAt" json:"updatedAt"`
}
