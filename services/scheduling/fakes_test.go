package scheduling

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"mindloo/models"
)

// In-memory repositories for service tests. Each fake can be primed with an
// error to simulate a store failure.

type fakeAvailabilityRepo struct {
	docs map[string]*models.TherapistAvailability
	err  error
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{docs: make(map[string]*models.TherapistAvailability)}
}

func copyEntries(entries []models.DateEntry) []models.DateEntry {
	out := make([]models.DateEntry, len(entries))
	for i, e := range entries {
		out[i] = models.DateEntry{Date: e.Date, TimeSlots: append([]models.TimeSlot(nil), e.TimeSlots...)}
	}
	return out
}

func (f *fakeAvailabilityRepo) Get(_ context.Context, therapistID string) (*models.TherapistAvailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[therapistID]
	if !ok {
		return nil, nil
	}
	return &models.TherapistAvailability{
		TherapistID:  doc.TherapistID,
		Availability: copyEntries(doc.Availability),
	}, nil
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, doc *models.TherapistAvailability) error {
	if f.err != nil {
		return f.err
	}
	f.docs[doc.TherapistID] = &models.TherapistAvailability{
		TherapistID:  doc.TherapistID,
		Availability: copyEntries(doc.Availability),
	}
	return nil
}

func (f *fakeAvailabilityRepo) SetEntries(_ context.Context, therapistID string, entries []models.DateEntry) error {
	if f.err != nil {
		return f.err
	}
	doc, ok := f.docs[therapistID]
	if !ok {
		return errors.New("availability not found")
	}
	doc.Availability = copyEntries(entries)
	return nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, therapistID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.docs, therapistID)
	return nil
}

type fakeUnavailabilityRepo struct {
	docs      map[string]*models.TherapistUnavailability
	err       error
	createErr error
	setErr    error
}

func newFakeUnavailabilityRepo() *fakeUnavailabilityRepo {
	return &fakeUnavailabilityRepo{docs: make(map[string]*models.TherapistUnavailability)}
}

func (f *fakeUnavailabilityRepo) Get(_ context.Context, therapistID string) (*models.TherapistUnavailability, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[therapistID]
	if !ok {
		return nil, nil
	}
	return &models.TherapistUnavailability{
		TherapistID:    doc.TherapistID,
		Unavailability: copyEntries(doc.Unavailability),
	}, nil
}

func (f *fakeUnavailabilityRepo) Create(_ context.Context, doc *models.TherapistUnavailability) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.docs[doc.TherapistID] = &models.TherapistUnavailability{
		TherapistID:    doc.TherapistID,
		Unavailability: copyEntries(doc.Unavailability),
	}
	return nil
}

func (f *fakeUnavailabilityRepo) SetEntries(_ context.Context, therapistID string, entries []models.DateEntry) error {
	if f.setErr != nil {
		return f.setErr
	}
	doc, ok := f.docs[therapistID]
	if !ok {
		return errors.New("unavailability not found")
	}
	doc.Unavailability = copyEntries(entries)
	return nil
}

func (f *fakeUnavailabilityRepo) Delete(_ context.Context, therapistID string) error {
	delete(f.docs, therapistID)
	return nil
}

type fakeAppointmentRepo struct {
	docs      map[string]*models.Appointment
	insertErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{docs: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) Insert(_ context.Context, appt *models.Appointment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	cp := *appt
	f.docs[appt.AppointmentID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeAppointmentRepo) Find(_ context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, doc := range f.docs {
		if filter.TherapistID != "" && doc.TherapistID != filter.TherapistID {
			continue
		}
		if filter.PatientID != "" && doc.PatientID != filter.PatientID {
			continue
		}
		if filter.Date != "" && doc.Date != filter.Date {
			continue
		}
		if filter.Status != "" && doc.Status != filter.Status {
			continue
		}
		out = append(out, *doc)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateByID(_ context.Context, id string, patch bson.M) (*models.Appointment, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	if v, ok := patch["status"]; ok {
		doc.Status = v.(string)
	}
	if v, ok := patch["subject"]; ok {
		doc.Subject = v.(string)
	}
	if v, ok := patch["notes"]; ok {
		doc.Notes = v.(string)
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeAppointmentRepo) DeleteByID(_ context.Context, id string) (*models.Appointment, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	delete(f.docs, id)
	return doc, nil
}

// newTestService builds a service over fresh fakes with a deterministic id
// sequence.
func newTestService() (*DefaultSchedulingService, *fakeAvailabilityRepo, *fakeUnavailabilityRepo, *fakeAppointmentRepo) {
	avail := newFakeAvailabilityRepo()
	unavail := newFakeUnavailabilityRepo()
	appts := newFakeAppointmentRepo()
	svc := NewDefaultSchedulingService(avail, unavail, appts)
	n := 0
	svc.NewID = func() (string, error) {
		n++
		return fmt.Sprintf("appt-%d", n), nil
	}
	return svc, avail, unavail, appts
}

func slot(start, end string) models.TimeSlot {
	return models.TimeSlot{Start: start, End: end}
}
