// Package docstore provides a generic MongoDB CRUD repository for the plain
// record collections (patients, therapists, sessions, medical records,
// messages, reviews, treatment plans). These entities carry no invariants
// beyond natural-key uniqueness, so one parameterized store serves them all.
package docstore

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
)

// Store is a typed CRUD repository over one collection. Documents are
// addressed by the field named by idField (e.g. "patientId").
type Store[T any] struct {
	coll    *mongo.Collection
	idField string
}

// NewStore creates a store over the named collection, ensuring a unique index
// on the id field.
func NewStore[T any](collection, idField string) *Store[T] {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection(collection)
	s := &Store[T]{coll: coll, idField: idField}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: idField, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create index on %s.%s: %v\n", collection, idField, err)
	}
	return s
}

func newContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}

// Insert stores a new document.
func (s *Store[T]) Insert(ctx context.Context, doc *T) error {
	ctx, cancel := newContext(ctx)
	defer cancel()

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", s.coll.Name(), err)
	}
	return nil
}

// FindByID fetches one document by its id field; (nil, nil) when absent.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return s.FindOneByField(ctx, s.idField, id)
}

// FindOneByField fetches one document by an arbitrary field; (nil, nil) when absent.
func (s *Store[T]) FindOneByField(ctx context.Context, field, value string) (*T, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	var doc T
	err := s.coll.FindOne(ctx, bson.M{field: value}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from %s: %w", s.coll.Name(), err)
	}
	return &doc, nil
}

// FindAll returns every document in the collection.
func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", s.coll.Name(), err)
	}
	return docs, nil
}

// UpdateByID applies a $set patch and returns the updated document;
// (nil, nil) when absent.
func (s *Store[T]) UpdateByID(ctx context.Context, id string, patch bson.M) (*T, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	patch["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := s.coll.FindOneAndUpdate(ctx, bson.M{s.idField: id}, bson.M{"$set": patch}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update %s document %s: %w", s.coll.Name(), id, err)
	}
	return &doc, nil
}

// DeleteByID removes a document; reports whether one was deleted.
func (s *Store[T]) DeleteByID(ctx context.Context, id string) (bool, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	result, err := s.coll.DeleteOne(ctx, bson.M{s.idField: id})
	if err != nil {
		return false, fmt.Errorf("failed to delete %s document %s: %w", s.coll.Name(), id, err)
	}
	return result.DeletedCount > 0, nil
}
