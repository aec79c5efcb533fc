package models

import "time"

// SessionNotes groups the free-text clinical notes captured per session.
type SessionNotes struct {
	Symptoms      string `bson:"symptoms,omitempty" json:"symptoms,omitempty"`
	Observations  string `bson:"observations,omitempty" json:"observations,omitempty"`
	Interventions string `bson:"interventions,omitempty" json:"interventions,omitempty"`
	Homework      string `bson:"homework,omitempty" json:"homework,omitempty"`
	ProgressNotes string `bson:"progressNotes,omitempty" json:"progressNotes,omitempty"`
}

// MoodRating records patient-reported mood on a 1-10 scale before and after.
type MoodRating struct {
	Before int `bson:"before,omitempty" json:"before,omitempty"`
	After  int `bson:"after,omitempty" json:"after,omitempty"`
}

type Session struct {
	SessionID       string       `bson:"sessionId" json:"sessionId"`
	AppointmentID   string       `bson:"appointmentId" json:"appointmentId" binding:"required"`
	TherapistID     string       `bson:"therapistId" json:"therapistId" binding:"required"`
	PatientID       string       `bson:"patientId" json:"patientId" binding:"required"`
	SessionDate     time.Time    `bson:"sessionDate" json:"sessionDate" binding:"required"`
	Duration        int          `bson:"duration" json:"duration" binding:"required"` // minutes
	SessionType     string       `bson:"sessionType" json:"sessionType"`              // initial, follow-up, emergency, final
	Notes           SessionNotes `bson:"notes,omitempty" json:"notes,omitempty"`
	Mood            MoodRating   `bson:"mood,omitempty" json:"mood,omitempty"`
	Goals           []string     `bson:"goals,omitempty" json:"goals,omitempty"`
	NextSessionPlan string       `bson:"nextSessionPlan,omitempty" json:"nextSessionPlan,omitempty"`
	IsCompleted     bool         `bson:"isCompleted" json:"isCompleted"`
	Confidential    bool         `bson:"confidential" json:"confidential"`
	CreatedAt       time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
}
