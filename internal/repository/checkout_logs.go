package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kyhorne/coload/internal/domain/model"
)

// CheckoutLogsRepositoryInterface defines the audit-trail persistence
// operations. It exists so the logging service can be tested with a
// fake repository.
type CheckoutLogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.CheckoutLogEntry) error
	Query(ctx context.Context, q model.CheckoutLogQuery) ([]*model.CheckoutLogEntry, error)
	Count(ctx context.Context, q model.CheckoutLogQuery) (int64, error)
}

// CheckoutLogsRepository persists checkout audit entries in MongoDB.
type CheckoutLogsRepository struct {
	collection *mongo.Collection
}

// NewCheckoutLogsRepository creates a new audit repository.
func NewCheckoutLogsRepository(db *MongoDB) *CheckoutLogsRepository {
	return &CheckoutLogsRepository{collection: db.CheckoutLogs}
}

// Create inserts a single audit entry.
func (r *CheckoutLogsRepository) Create(ctx context.Context, entry *model.CheckoutLogEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// Query returns audit entries matching the filter, newest first.
func (r *CheckoutLogsRepository) Query(ctx context.Context, q model.CheckoutLogQuery) ([]*model.CheckoutLogEntry, error) {
	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if q.Limit > 0 {
		findOptions.SetLimit(int64(q.Limit))
	}
	if q.Skip > 0 {
		findOptions.SetSkip(int64(q.Skip))
	}

	cursor, err := r.collection.Find(ctx, buildFilter(q), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*model.CheckoutLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Count returns the number of audit entries matching the filter.
func (r *CheckoutLogsRepository) Count(ctx context.Context, q model.CheckoutLogQuery) (int64, error) {
	return r.collection.CountDocuments(ctx, buildFilter(q))
}

// buildFilter converts the query options into a bson filter.
func buildFilter(q model.CheckoutLogQuery) bson.M {
	filter := bson.M{}

	if q.RequestID != "" {
		filter["request_id"] = q.RequestID
	}
	if q.Action != "" {
		filter["action"] = q.Action
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.StartTime != nil || q.EndTime != nil {
		timeFilter := bson.M{}
		if q.StartTime != nil {
			timeFilter["$gte"] = *q.StartTime
		}
		if q.EndTime != nil {
			timeFilter["$lte"] = *q.EndTime
		}
		filter["timestamp"] = timeFilter
	}

	return filter
}
