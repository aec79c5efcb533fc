package models

import "time"

// ReviewCategories breaks a review down into 1-5 sub-ratings.
type ReviewCategories struct {
	Professionalism int `bson:"professionalism,omitempty" json:"professionalism,omitempty"`
	Communication   int `bson:"communication,omitempty" json:"communication,omitempty"`
	Effectiveness   int `bson:"effectiveness,omitempty" json:"effectiveness,omitempty"`
	Empathy         int `bson:"empathy,omitempty" json:"empathy,omitempty"`
}

// ReviewResponse is the therapist's reply to a review.
type ReviewResponse struct {
	Content     string     `bson:"content,omitempty" json:"content,omitempty"`
	RespondedAt *time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}

type Review struct {
	ReviewID      string           `bson:"reviewId" json:"reviewId"`
	TherapistID   string           `bson:"therapistId" json:"therapistId" binding:"required"`
	PatientID     string           `bson:"patientId" json:"patientId" binding:"required"`
	AppointmentID string           `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	Rating        int              `bson:"rating" json:"rating" binding:"required,min=1,max=5"`
	Categories    ReviewCategories `bson:"categories,omitempty" json:"categories,omitempty"`
	Comment       string           `bson:"comment,omitempty" json:"comment,omitempty"`
	IsAnonymous   bool             `bson:"isAnonymous" json:"isAnonymous"`
	IsVerified    bool             `bson:"isVerified" json:"isVerified"`
	Response      ReviewResponse   `bson:"response,omitempty" json:"response,omitempty"`
	IsVisible     bool             `bson:"isVisible" json:"isVisible"`
	Helpful       int              `bson:"helpful" json:"helpful"`
	CreatedAt     time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time        `bson:"updatedAt" json:"updatedAt"`
}
