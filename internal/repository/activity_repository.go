package repository

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository stores the activity journal.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *MongoDB) *ActivityRepository {
	return &ActivityRepository{collection: db.Activity}
}

// Append inserts entries. A batch is inserted unordered so one bad entry
// does not hold back the rest.
func (r *ActivityRepository) Append(ctx context.Context, entries ...*model.LogEntry) error {
	now := time.Now()
	switch len(entries) {
	case 0:
		return nil
	case 1:
		entries[0].Stamp(now)
		_, err := r.collection.InsertOne(ctx, entries[0])
		return err
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		entry.Stamp(now)
		docs[i] = entry
	}
	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

// Find returns the entries matching f, newest first.
func (r *ActivityRepository) Find(ctx context.Context, f model.ActivityFilter) ([]*model.LogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	if f.Skip > 0 {
		opts.SetSkip(int64(f.Skip))
	}

	cursor, err := r.collection.Find(ctx, activityQuery(f), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	entries := []*model.LogEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the number of entries matching f, ignoring its paging.
func (r *ActivityRepository) Count(ctx context.Context, f model.ActivityFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, activityQuery(f))
}

func activityQuery(f model.ActivityFilter) bson.M {
	query := bson.M{}
	if f.Kind != "" {
		query["kind"] = f.Kind
	}
	if f.Action != "" {
		query["action"] = f.Action
	}
	if f.UserID != "" {
		query["user_id"] = f.UserID
	}
	if f.RequestID != "" {
		query["request_id"] = f.RequestID
	}
	if f.Since != nil || f.Until != nil {
		window := bson.M{}
		if f.Since != nil {
			window["$gte"] = *f.Since
		}
		if f.Until != nil {
			window["$lt"] = *f.Until
		}
		query["timestamp"] = window
	}
	return query
}
