package scheduling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindloo/models"
)

func TestInsertUnavailability(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*DefaultSchedulingService, *fakeUnavailabilityRepo) {
		t.Helper()
		svc, _, unavailRepo, _ := newTestService()
		_, _, err := svc.InsertWorkTime(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "17:00")})
		require.NoError(t, err)
		return svc, unavailRepo
	}

	t.Run("first insert creates the document", func(t *testing.T) {
		svc, _ := seed(t)
		doc, created, err := svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "10:00")})
		require.NoError(t, err)
		assert.True(t, created)
		require.Len(t, doc.Unavailability, 1)
	})

	t.Run("requires availability for the therapist", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		_, _, err := svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "10:00")})
		se := AsError(err)
		require.NotNil(t, se)
		assert.Equal(t, KindNotFound, se.Kind)
	})

	t.Run("requires declared hours on the date", func(t *testing.T) {
		svc, _ := seed(t)
		_, _, err := svc.InsertUnavailability(ctx, "T1", "2024-05-02", []models.TimeSlot{slot("09:00", "10:00")})
		se := AsError(err)
		require.NotNil(t, se)
		assert.Equal(t, KindInvalid, se.Kind)
		assert.Equal(t, "Therapist is not available on date 2024-05-02", se.Message)
	})

	t.Run("every slot must sit inside declared hours", func(t *testing.T) {
		svc, _ := seed(t)
		_, _, err := svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{
			slot("09:00", "10:00"),
			slot("16:00", "18:00"),
		})
		se := AsError(err)
		require.NotNil(t, se)
		assert.Equal(t, KindInvalid, se.Kind)
		assert.Equal(t, "One or more time slots are not within the therapist's availability.", se.Message)
	})

	t.Run("exact duplicates are rejected", func(t *testing.T) {
		svc, _ := seed(t)
		_, _, err := svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "10:00")})
		require.NoError(t, err)

		_, _, err = svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "10:00")})
		se := AsError(err)
		require.NotNil(t, se)
		assert.Equal(t, KindConflict, se.Kind)
		assert.Equal(t, "Duplicate time slots found for the same date.", se.Message)
	})

	t.Run("a partially overlapping slot passes the duplicate check", func(t *testing.T) {
		// Exact-match detection only; this asymmetry with work-time
		// insertion is inherited API behavior.
		svc, unavailRepo := seed(t)
		_, _, err := svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "10:00")})
		require.NoError(t, err)

		_, _, err = svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:30", "10:30")})
		require.NoError(t, err)

		doc, err := unavailRepo.Get(ctx, "T1")
		require.NoError(t, err)
		entry := models.FindDate(doc.Unavailability, "2024-05-01")
		require.NotNil(t, entry)
		assert.Len(t, entry.TimeSlots, 2)
	})
}

func TestDeleteUnavailability(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) *DefaultSchedulingService {
		t.Helper()
		svc, _, _, _ := newTestService()
		_, _, err := svc.InsertWorkTime(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "17:00")})
		require.NoError(t, err)
		_, _, err = svc.InsertUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{
			slot("09:00", "09:30"),
			slot("10:00", "10:30"),
		})
		require.NoError(t, err)
		return svc
	}

	t.Run("removes matched slots and collapses the emptied date", func(t *testing.T) {
		svc := seed(t)

		doc, err := svc.DeleteUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("09:00", "09:30")})
		require.NoError(t, err)
		entry := models.FindDate(doc.Unavailability, "2024-05-01")
		require.NotNil(t, entry)
		assert.Equal(t, []models.TimeSlot{slot("10:00", "10:30")}, entry.TimeSlots)

		doc, err = svc.DeleteUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("10:00", "10:30")})
		require.NoError(t, err)
		assert.Nil(t, models.FindDate(doc.Unavailability, "2024-05-01"))
	})

	t.Run("unknown slots in the batch are silently skipped", func(t *testing.T) {
		svc := seed(t)

		doc, err := svc.DeleteUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{
			slot("09:00", "09:30"),
			slot("15:00", "16:00"),
		})
		require.NoError(t, err)
		entry := models.FindDate(doc.Unavailability, "2024-05-01")
		require.NotNil(t, entry)
		assert.Equal(t, []models.TimeSlot{slot("10:00", "10:30")}, entry.TimeSlots)
	})

	t.Run("fails only when nothing matches", func(t *testing.T) {
		svc := seed(t)
		_, err := svc.DeleteUnavailability(ctx, "T1", "2024-05-01", []models.TimeSlot{slot("15:00", "16:00")})
		se := AsError(err)
		require.NotNil(t, se)
		assert.Equal(t, KindNotFound, se.Kind)
		assert.Equal(t, "The specified time slots do not exist in the database.", se.Message)
	})

	t.Run("without slots the whole date goes", func(t *testing.T) {
		svc := seed(t)
		doc, err := svc.DeleteUnavailability(ctx, "T1", "2024-05-01", nil)
		require.NoError(t, err)
		assert.Nil(t, models.FindDate(doc.Unavailability, "2024-05-01"))
	})

	t.Run("unknown therapist or date is not found", func(t *testing.T) {
		svc := seed(t)
		_, err := svc.DeleteUnavailability(ctx, "T9", "2024-05-01", nil)
		require.NotNil(t, AsError(err))
		assert.Equal(t, KindNotFound, AsError(err).Kind)

		_, err = svc.DeleteUnavailability(ctx, "T1", "2024-06-01", nil)
		require.NotNil(t, AsError(err))
		assert.Equal(t, "No unavailability found for therapist on date 2024-06-01", AsError(err).Message)
	})
}
