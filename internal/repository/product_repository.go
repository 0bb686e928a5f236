// Package repository provides catalog data access.
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInsufficientStock is returned when a conditional stock decrement finds
// fewer units than requested.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepositoryInterface defines the interface for product repository operations.
type ProductRepositoryInterface interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error)
	Count(ctx context.Context, filter model.ProductFilter) (int64, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error
	IncrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error
	LowStock(ctx context.Context, threshold, limit int) ([]*model.Product, error)
}

// ProductRepository implements ProductRepositoryInterface using MongoDB.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *MongoDB) *ProductRepository {
	return &ProductRepository{
		collection: db.Products,
	}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, product)
	return err
}

// FindByID finds a product by ID. Returns nil, nil when it does not exist.
func (r *ProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindBySlug finds a product by its URL slug.
func (r *ProductRepository) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ProductRepository) findOne(ctx context.Context, filter bson.M) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, filter).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDs returns the products matching ids. Missing IDs are skipped.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Product, error) {
	if len(ids) == 0 {
		return []*model.Product{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []*model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// List returns products matching filter, newest first.
func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]*model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Skip > 0 {
		opts.SetSkip(int64(filter.Skip))
	}

	cursor, err := r.collection.Find(ctx, productQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	products := make([]*model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the number of products matching filter.
func (r *ProductRepository) Count(ctx context.Context, filter model.ProductFilter) (int64, error) {
	return r.collection.CountDocuments(ctx, productQuery(filter))
}

// Update replaces the editable fields of a product.
func (r *ProductRepository) Update(ctx context.Context, product *model.Product) error {
	product.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        product.Name,
			"slug":        product.Slug,
			"description": product.Description,
			"price":       product.Price,
			"image":       product.Image,
			"category":    product.Category,
			"stock":       product.Stock,
			"active":      product.Active,
			"updated_at":  product.UpdatedAt,
		},
	}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deactivates a product. Orders keep referencing it, so the document stays.
func (r *ProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"active": false, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DecrementStock removes quantity units from the product stock only if at
// least that many are available.
func (r *ProductRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "active": true, "stock": bson.M{"$gte": quantity}},
		bson.M{
			"$inc": bson.M{"stock": -quantity},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// IncrementStock returns quantity units to the product stock.
func (r *ProductRepository) IncrementStock(ctx context.Context, id primitive.ObjectID, quantity int) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"stock": quantity},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	return err
}

// LowStock returns active products with stock at or below threshold.
func (r *ProductRepository) LowStock(ctx context.Context, threshold, limit int) ([]*model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "stock", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{"active": true, "stock": bson.M{"$lte": threshold}}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	products := make([]*model.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func productQuery(filter model.ProductFilter) bson.M {
	query := bson.M{}
	if filter.OnlyActive {
		query["active"] = true
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	}
	return query
}
