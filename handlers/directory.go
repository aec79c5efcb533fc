package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mindloo/database/repository/docstore"
	"mindloo/models"
)

// DirectoryHandlers bundles the CRUD handlers for the plain record
// collections. Patients and therapists carry client-supplied natural ids with
// uniqueness checks; the rest get generated uuids.
type DirectoryHandlers struct {
	Patients       *crudHandlers[models.Patient]
	Therapists     *crudHandlers[models.Therapist]
	Sessions       *crudHandlers[models.Session]
	MedicalRecords *crudHandlers[models.MedicalRecord]
	Messages       *crudHandlers[models.Message]
	Reviews        *crudHandlers[models.Review]
	TreatmentPlans *crudHandlers[models.TreatmentPlan]
}

// NewDirectoryHandlers wires up the docstore-backed CRUD handlers. Must run
// after database.InitDB.
func NewDirectoryHandlers() *DirectoryHandlers {
	return &DirectoryHandlers{
		Patients: &crudHandlers[models.Patient]{
			store:  docstore.NewStore[models.Patient]("patients", "patientId"),
			noun:   "Patient",
			key:    "patient",
			idJSON: "patientId",
			idOf:   func(p *models.Patient) string { return p.PatientID },
			prepare: func(p *models.Patient) {
				now := time.Now()
				p.CreatedAt, p.UpdatedAt = now, now
			},
			unique: []uniqueCheck[models.Patient]{
				{field: "email", value: func(p *models.Patient) string { return p.Email }, label: "email"},
				{field: "patientId", value: func(p *models.Patient) string { return p.PatientID }, label: "username"},
			},
			altLookup: "email",
		},
		Therapists: &crudHandlers[models.Therapist]{
			store:  docstore.NewStore[models.Therapist]("therapists", "therapistId"),
			noun:   "Therapist",
			key:    "therapist",
			idJSON: "therapistId",
			idOf:   func(t *models.Therapist) string { return t.TherapistID },
			prepare: func(t *models.Therapist) {
				if t.Type == "" {
					t.Type = "therapist"
				}
				now := time.Now()
				t.CreatedAt, t.UpdatedAt = now, now
			},
			unique: []uniqueCheck[models.Therapist]{
				{field: "email", value: func(t *models.Therapist) string { return t.Email }, label: "email"},
				{field: "therapistId", value: func(t *models.Therapist) string { return t.TherapistID }, label: "username"},
			},
			altLookup: "email",
		},
		Sessions: &crudHandlers[models.Session]{
			store:  docstore.NewStore[models.Session]("sessions", "sessionId"),
			noun:   "Session",
			key:    "session",
			idJSON: "sessionId",
			idOf:   func(s *models.Session) string { return s.SessionID },
			prepare: func(s *models.Session) {
				if s.SessionID == "" {
					s.SessionID = uuid.New().String()
				}
				if s.SessionType == "" {
					s.SessionType = "follow-up"
				}
				now := time.Now()
				s.CreatedAt, s.UpdatedAt = now, now
			},
		},
		MedicalRecords: &crudHandlers[models.MedicalRecord]{
			store:  docstore.NewStore[models.MedicalRecord]("medical_records", "recordId"),
			noun:   "Medical record",
			key:    "medicalRecord",
			idJSON: "recordId",
			idOf:   func(r *models.MedicalRecord) string { return r.RecordID },
			prepare: func(r *models.MedicalRecord) {
				if r.RecordID == "" {
					r.RecordID = uuid.New().String()
				}
				now := time.Now()
				r.CreatedAt, r.UpdatedAt = now, now
			},
		},
		Messages: &crudHandlers[models.Message]{
			store:  docstore.NewStore[models.Message]("messages", "messageId"),
			noun:   "Message",
			key:    "message",
			idJSON: "messageId",
			idOf:   func(m *models.Message) string { return m.MessageID },
			prepare: func(m *models.Message) {
				if m.MessageID == "" {
					m.MessageID = uuid.New().String()
				}
				if m.MessageType == "" {
					m.MessageType = "text"
				}
				if m.Priority == "" {
					m.Priority = "normal"
				}
				now := time.Now()
				m.CreatedAt, m.UpdatedAt = now, now
			},
		},
		Reviews: &crudHandlers[models.Review]{
			store:  docstore.NewStore[models.Review]("reviews", "reviewId"),
			noun:   "Review",
			key:    "review",
			idJSON: "reviewId",
			idOf:   func(r *models.Review) string { return r.ReviewID },
			prepare: func(r *models.Review) {
				if r.ReviewID == "" {
					r.ReviewID = uuid.New().String()
				}
				r.IsVisible = true
				now := time.Now()
				r.CreatedAt, r.UpdatedAt = now, now
			},
		},
		TreatmentPlans: &crudHandlers[models.TreatmentPlan]{
			store:  docstore.NewStore[models.TreatmentPlan]("treatment_plans", "planId"),
			noun:   "Treatment plan",
			key:    "treatmentPlan",
			idJSON: "planId",
			idOf:   func(p *models.TreatmentPlan) string { return p.PlanID },
			prepare: func(p *models.TreatmentPlan) {
				if p.PlanID == "" {
					p.PlanID = uuid.New().String()
				}
				for i := range p.Goals {
					if p.Goals[i].GoalID == "" {
						p.Goals[i].GoalID = uuid.New().String()
					}
					if p.Goals[i].Status == "" {
						p.Goals[i].Status = "not-started"
					}
				}
				now := time.Now()
				p.CreatedAt, p.UpdatedAt = now, now
			},
		},
	}
}

// MessageStore exposes the messages collection for the reminder worker.
func (d *DirectoryHandlers) MessageStore() *docstore.Store[models.Message] {
	return d.Messages.store
}

// Register mounts every CRUD group under /api.
func (d *DirectoryHandlers) Register(api *gin.RouterGroup) {
	d.Patients.Register(api.Group("/patients"))
	d.Therapists.Register(api.Group("/therapists"))
	d.Sessions.Register(api.Group("/sessions"))
	d.MedicalRecords.Register(api.Group("/medical-records"))
	d.Messages.Register(api.Group("/messages"))
	d.Reviews.Register(api.Group("/reviews"))
	d.TreatmentPlans.Register(api.Group("/treatment-plans"))
}
