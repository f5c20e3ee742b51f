package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists runs in a MongoDB collection, for deployments that
// want queryable run history shared across API instances.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a MongoStore backed by the given collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

// Get retrieves a run by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&run)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Set upserts a run by ID.
func (s *MongoStore) Set(ctx context.Context, run *Run) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"id": run.ID}, run, opts)
	return err
}

// Delete removes a run.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	return err
}

// List returns every stored run, most recent first.
func (s *MongoStore) List(ctx context.Context) ([]*Run, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var runs []*Run
	for cur.Next(ctx) {
		var run Run
		if err := cur.Decode(&run); err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, cur.Err()
}

// Cleanup removes runs older than olderThan.
func (s *MongoStore) Cleanup(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	_, err := s.coll.DeleteMany(ctx, bson.M{"createdat": bson.M{"$lt": cutoff}})
	return err
}

// Close does nothing; the caller owns the underlying *mongo.Client
// lifecycle.
func (s *MongoStore) Close() error { return nil }

var _ Store = (*MongoStore)(nil)
