package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// TokenRepositoryInterface defines the interface for token storage.
type TokenRepositoryInterface interface {
	Store(ctx context.Context, raw string, userID primitive.ObjectID, tokenType model.TokenType, expiresAt time.Time) error
	ConsumeRefresh(ctx context.Context, raw string) (*model.Token, error)
	IsRevoked(ctx context.Context, raw string) (bool, error)
	DeleteForUser(ctx context.Context, userID primitive.ObjectID, tokenType model.TokenType) error
}

// TokenRepository keeps refresh tokens and revoked access tokens until they
// expire. A TTL index on expires_at removes them afterwards.
type TokenRepository struct {
	collection *mongo.Collection
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *MongoDB) *TokenRepository {
	return &TokenRepository{
		collection: db.Tokens,
	}
}

func tokenDigest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Store saves a digest of raw.
func (r *TokenRepository) Store(ctx context.Context, raw string, userID primitive.ObjectID, tokenType model.TokenType, expiresAt time.Time) error {
	_, err := r.collection.InsertOne(ctx, model.Token{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Digest:    tokenDigest(raw),
		Type:      tokenType,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	})
	return err
}

// ConsumeRefresh removes an unexpired refresh token and returns it, so each
// refresh token can be exchanged once. Returns nil, nil when there is none.
func (r *TokenRepository) ConsumeRefresh(ctx context.Context, raw string) (*model.Token, error) {
	var token model.Token
	err := r.collection.FindOneAndDelete(ctx, bson.M{
		"digest":     tokenDigest(raw),
		"type":       model.TokenRefresh,
		"expires_at": bson.M{"$gt": time.Now()},
	}).Decode(&token)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// IsRevoked reports whether an access token was revoked.
func (r *TokenRepository) IsRevoked(ctx context.Context, raw string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"digest": tokenDigest(raw),
		"type":   model.TokenRevoked,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteForUser removes every token of one type held by userID.
func (r *TokenRepository) DeleteForUser(ctx context.Context, userID primitive.ObjectID, tokenType model.TokenType) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID, "type": tokenType})
	return err
}
