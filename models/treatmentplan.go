package models

import "time"

// PlanGoal is one tracked goal within a treatment plan.
type PlanGoal struct {
	GoalID      string     `bson:"goalId" json:"goalId"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	TargetDate  *time.Time `bson:"targetDate,omitempty" json:"targetDate,omitempty"`
	Status      string     `bson:"status" json:"status"`     // not-started, in-progress, achieved, abandoned
	Progress    int        `bson:"progress" json:"progress"` // 0-100
}

type PlanDiagnosis struct {
	Primary   string   `bson:"primary,omitempty" json:"primary,omitempty"`
	Secondary []string `bson:"secondary,omitempty" json:"secondary,omitempty"`
}

type Intervention struct {
	Type        string     `bson:"type,omitempty" json:"type,omitempty"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	Frequency   string     `bson:"frequency,omitempty" json:"frequency,omitempty"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

type TreatmentPlan struct {
	PlanID        string         `bson:"planId" json:"planId"`
	PatientID     string         `bson:"patientId" json:"patientId" binding:"required"`
	TherapistID   string         `bson:"therapistId" json:"therapistId" binding:"required"`
	Title         string         `bson:"title" json:"title" binding:"required"`
	Description   string         `bson:"description,omitempty" json:"description,omitempty"`
	Diagnosis     PlanDiagnosis  `bson:"diagnosis,omitempty" json:"diagnosis,omitempty"`
	Goals         []PlanGoal     `bson:"goals,omitempty" json:"goals,omitempty"`
	Interventions []Intervention `bson:"interventions,omitempty" json:"interventions,omitempty"`
	Medications   []Medication   `bson:"medications,omitempty" json:"medications,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}
