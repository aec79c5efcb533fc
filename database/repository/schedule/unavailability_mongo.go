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

// MongoUnavailabilityRepo implements UnavailabilityRepository using MongoDB.
type MongoUnavailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoUnavailabilityRepo creates the repository over the
// therapist_unavailability collection.
func NewMongoUnavailabilityRepo() UnavailabilityRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("therapist_unavailability")
	repo := &MongoUnavailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoUnavailabilityRepo) ensureIndexes() error {
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

func (r *MongoUnavailabilityRepo) Get(ctx context.Context, therapistID string) (*models.TherapistUnavailability, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var doc models.TherapistUnavailability
	err := r.coll.FindOne(ctx, bson.M{"therapistId": therapistID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailability for therapist %s: %w", therapistID, err)
	}
	return &doc, nil
}

func (r *MongoUnavailabilityRepo) Create(ctx context.Context, doc *models.TherapistUnavailability) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create unavailability for therapist %s: %w", doc.TherapistID, err)
	}
	return nil
}

func (r *MongoUnavailabilityRepo) SetEntries(ctx context.Context, therapistID string, entries []models.DateEntry) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"therapistId": therapistID}
	update := bson.M{"$set": bson.M{"unavailability": entries}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update unavailability for therapist %s: %w", therapistID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("unavailability for therapist %s not found", therapistID)
	}
	return nil
}

func (r *MongoUnavailabilityRepo) Delete(ctx context.Context, therapistID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"therapistId": therapistID})
	if err != nil {
		return fmt.Errorf("failed to delete unavailability for therapist %s: %w", therapistID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("unavailability for therapist %s not found", therapistID)
	}
	return nil
}
