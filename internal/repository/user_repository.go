package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrAccountExists is returned when the email or username is already taken.
var ErrAccountExists = errors.New("account already exists")

// UserRepositoryInterface defines the interface for account storage.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, profile model.CustomerProfile) (*model.User, error)
	RecordLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	Count(ctx context.Context, activeOnly bool) (int64, error)
}

// UserRepository stores accounts in the users collection. Email and username
// are unique.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		collection: db.Users,
	}
}

// Create inserts user with a normalized email.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Email = model.NormalizeEmail(user.Email)
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Roles == nil {
		user.Roles = []string{}
	}

	_, err := r.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAccountExists
	}
	return err
}

// FindByID returns the account with id, or nil, nil when it does not exist.
func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByLogin looks an account up by email or username.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": model.NormalizeEmail(login)},
		bson.M{"username": login},
	}})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile replaces the display name and saved customer details. It
// returns nil, nil when the account does not exist.
func (r *UserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, name string, profile model.CustomerProfile) (*model.User, error) {
	var user model.User
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":       name,
			"profile":    profile,
			"updated_at": time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RecordLogin stamps the last successful login.
func (r *UserRepository) RecordLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login_at": at}})
	return err
}

// Count returns the number of accounts.
func (r *UserRepository) Count(ctx context.Context, activeOnly bool) (int64, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	return r.collection.CountDocuments(ctx, filter)
}
