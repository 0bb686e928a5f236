package repository

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WishlistRepositoryInterface defines the interface for wishlist repository operations.
type WishlistRepositoryInterface interface {
	Get(ctx context.Context, userID string) (*model.Wishlist, error)
	Add(ctx context.Context, userID, productID string) error
	Remove(ctx context.Context, userID, productID string) error
}

// WishlistRepository implements WishlistRepositoryInterface using MongoDB.
type WishlistRepository struct {
	collection *mongo.Collection
}

// NewWishlistRepository creates a new wishlist repository.
func NewWishlistRepository(db *MongoDB) *WishlistRepository {
	return &WishlistRepository{
		collection: db.Wishlists,
	}
}

// Get returns the wishlist of userID, or an empty one when none was stored.
func (r *WishlistRepository) Get(ctx context.Context, userID string) (*model.Wishlist, error) {
	var wishlist model.Wishlist
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&wishlist)
	if err == mongo.ErrNoDocuments {
		return &model.Wishlist{UserID: userID, ProductIDs: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}
	if wishlist.ProductIDs == nil {
		wishlist.ProductIDs = []string{}
	}
	return &wishlist, nil
}

// Add saves productID in the wishlist. Adding twice keeps a single entry.
func (r *WishlistRepository) Add(ctx context.Context, userID, productID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$addToSet": bson.M{"product_ids": productID},
			"$set":      bson.M{"updated_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// Remove deletes productID from the wishlist.
func (r *WishlistRepository) Remove(ctx context.Context, userID, productID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{
			"$pull": bson.M{"product_ids": productID},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	return err
}
