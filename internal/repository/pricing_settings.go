// Package repository provides data access for pricing settings.
package repository

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/cart"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PricingSettings is a versioned pricing document. At most one is active.
type PricingSettings struct {
	ID                    primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	TaxRate               float64                `bson:"tax_rate" json:"tax_rate"`
	FlatShippingCost      float64                `bson:"flat_shipping_cost" json:"flat_shipping_cost"`
	FreeShippingThreshold float64                `bson:"free_shipping_threshold" json:"free_shipping_threshold"`
	Active                bool                   `bson:"active" json:"active"`
	Version               int                    `bson:"version" json:"version"`
	CreatedAt             time.Time              `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time              `bson:"updated_at" json:"updated_at"`
	CreatedBy             string                 `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy             string                 `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
	Metadata              map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
}

// Pricing returns the settings as engine pricing.
func (s *PricingSettings) Pricing() cart.Pricing {
	return cart.Pricing{
		TaxRate:               s.TaxRate,
		FlatShippingCost:      s.FlatShippingCost,
		FreeShippingThreshold: s.FreeShippingThreshold,
	}
}

// PricingSettingsRepository provides methods for pricing settings operations.
type PricingSettingsRepository struct {
	collection *mongo.Collection
}

// NewPricingSettingsRepository creates a new pricing settings repository.
func NewPricingSettingsRepository(db *MongoDB) *PricingSettingsRepository {
	return &PricingSettingsRepository{
		collection: db.Pricing,
	}
}

// GetActive returns the active pricing settings, or nil, nil when none is stored.
func (r *PricingSettingsRepository) GetActive(ctx context.Context) (*PricingSettings, error) {
	var settings PricingSettings
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create deactivates the current settings and stores p as the new active version.
func (r *PricingSettingsRepository) Create(ctx context.Context, p cart.Pricing, createdBy string) (*PricingSettings, error) {
	version := 1
	if current, err := r.GetActive(ctx); err != nil {
		return nil, err
	} else if current != nil {
		version = current.Version + 1
	}

	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settings := PricingSettings{
		ID:                    primitive.NewObjectID(),
		TaxRate:               p.TaxRate,
		FlatShippingCost:      p.FlatShippingCost,
		FreeShippingThreshold: p.FreeShippingThreshold,
		Active:                true,
		Version:               version,
		CreatedAt:             now,
		UpdatedAt:             now,
		CreatedBy:             createdBy,
		Metadata:              make(map[string]interface{}),
	}

	if _, err := r.collection.InsertOne(ctx, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update edits an existing settings document in place and bumps its version.
func (r *PricingSettingsRepository) Update(ctx context.Context, id primitive.ObjectID, p cart.Pricing, updatedBy string) (*PricingSettings, error) {
	set := bson.M{
		"tax_rate":                p.TaxRate,
		"flat_shipping_cost":      p.FlatShippingCost,
		"free_shipping_threshold": p.FreeShippingThreshold,
		"updated_at":              time.Now(),
	}
	if updatedBy != "" {
		set["updated_by"] = updatedBy
	}

	var settings PricingSettings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// List returns pricing settings history, newest first.
func (r *PricingSettingsRepository) List(ctx context.Context, limit int) ([]PricingSettings, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var settings []PricingSettings
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}
