package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindloo/config"
	"mindloo/database"
	"mindloo/models"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates the repository over the
// therapist_availability collection.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("therapist_availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "therapistId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) Get(ctx context.Context, therapistID string) (*models.TherapistAvailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var doc models.TherapistAvailability
	err := r.coll.FindOne(ctx, bson.M{"therapistId": therapistID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for therapist %s: %w", therapistID, err)
	}
	return &doc, nil
}

func (r *MongoAvailabilityRepo) Create(ctx context.Context, doc *models.TherapistAvailability) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create availability for therapist %s: %w", doc.TherapistID, err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) SetEntries(ctx context.Context, therapistID string, entries []models.DateEntry) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"therapistId": therapistID}
	update := bson.M{"$set": bson.M{"availability": entries}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for therapist %s: %w", therapistID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("availability for therapist %s not found", therapistID)
	}
	return nil
}

func (r *MongoAvailabilityRepo) Delete(ctx context.Context, therapistID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"therapistId": therapistID})
	if err != nil {
		return fmt.Errorf("failed to delete availability for therapist %s: %w", therapistID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("availability for therapist %s not found", therapistID)
	}
	return nil
}
