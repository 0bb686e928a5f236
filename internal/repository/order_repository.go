package repository

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepositoryInterface defines the interface for order repository operations.
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error)
	ListByOwner(ctx context.Context, owner string, limit, skip int64) ([]*model.Order, error)
	List(ctx context.Context, status model.OrderStatus, limit, skip int64) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to model.OrderStatus, changedBy string) (*model.Order, error)
	CountByStatus(ctx context.Context) (map[model.OrderStatus]int64, error)
	Revenue(ctx context.Context) (float64, error)
}

// OrderRepository implements OrderRepositoryInterface using MongoDB.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{
		collection: db.Orders,
	}
}

// Create inserts a new order.
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

// FindByID finds an order by ID. Returns nil, nil when it does not exist.
func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Order, error) {
	var order model.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByOwner returns the orders of one owner, newest first.
func (r *OrderRepository) ListByOwner(ctx context.Context, owner string, limit, skip int64) ([]*model.Order, error) {
	return r.find(ctx, bson.M{"owner": owner}, limit, skip)
}

// List returns all orders, optionally filtered by status, newest first.
func (r *OrderRepository) List(ctx context.Context, status model.OrderStatus, limit, skip int64) ([]*model.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter, limit, skip)
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if skip > 0 {
		opts.SetSkip(skip)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	orders := make([]*model.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus moves an order from one status to another. It returns nil, nil
// when the order is missing or is no longer in status from.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to model.OrderStatus, changedBy string) (*model.Order, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{"status": to, "updated_at": now},
		"$push": bson.M{"history": model.StatusChange{
			Status:    to,
			ChangedBy: changedBy,
			ChangedAt: now,
		}},
	}

	var order model.Order
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "status": from},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CountByStatus returns the number of orders per status.
func (r *OrderRepository) CountByStatus(ctx context.Context) (map[model.OrderStatus]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		Status model.OrderStatus `bson:"_id"`
		Count  int64             `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	counts := make(map[model.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Revenue sums the grand total of every order that was not cancelled.
func (r *OrderRepository) Revenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: bson.D{{Key: "$ne", Value: model.OrderCancelled}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$totals.grand_total"}}},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
