// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig tunes the client connection pool.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	// EnableCompression negotiates zstd, snappy or zlib wire compression.
	EnableCompression bool
}

// DefaultMongoConfig returns the pool settings used in production.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Products    *mongo.Collection
	Categories  *mongo.Collection
	Carts       *mongo.Collection
	Orders      *mongo.Collection
	Wishlists   *mongo.Collection
	Pricing     *mongo.Collection
	Activity    *mongo.Collection
	Users       *mongo.Collection
	Roles       *mongo.Collection
	Permissions *mongo.Collection
	Tokens      *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:      client,
		Database:    db,
		Products:    db.Collection("products"),
		Categories:  db.Collection("categories"),
		Carts:       db.Collection("carts"),
		Orders:      db.Collection("orders"),
		Wishlists:   db.Collection("wishlists"),
		Pricing:     db.Collection("pricing_settings"),
		Activity:    db.Collection("activity"),
		Users:       db.Collection("users"),
		Roles:       db.Collection("roles"),
		Permissions: db.Collection("permissions"),
		Tokens:      db.Collection("tokens"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create indexes: %w", err)
	}

	return mongoDB, nil
}

// indexSpec describes one index. Errors creating optional indexes, such as a
// conflict with an existing index of the same keys, are ignored.
type indexSpec struct {
	collection func(m *MongoDB) *mongo.Collection
	keys       bson.D
	unique     bool
	expireNow  bool
	required   bool
}

var indexSpecs = []indexSpec{
	{collection: func(m *MongoDB) *mongo.Collection { return m.Pricing }, keys: bson.D{{Key: "active", Value: 1}}, required: true},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Products }, keys: bson.D{{Key: "slug", Value: 1}}, unique: true, required: true},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Products }, keys: bson.D{{Key: "category", Value: 1}, {Key: "active", Value: 1}}},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Categories }, keys: bson.D{{Key: "slug", Value: 1}}, unique: true},
	// Order history per owner and the status dashboards.
	{collection: func(m *MongoDB) *mongo.Collection { return m.Orders }, keys: bson.D{{Key: "owner", Value: 1}, {Key: "created_at", Value: -1}}},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Orders }, keys: bson.D{{Key: "status", Value: 1}}},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Wishlists }, keys: bson.D{{Key: "user_id", Value: 1}}, unique: true},
	// The activity expiry index is managed by SetActivityRetention.
	{collection: func(m *MongoDB) *mongo.Collection { return m.Activity }, keys: bson.D{{Key: "request_id", Value: 1}}},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Activity }, keys: bson.D{{Key: "action", Value: 1}, {Key: "timestamp", Value: -1}}},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Activity }, keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Users }, keys: bson.D{{Key: "email", Value: 1}}, unique: true, required: true},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Users }, keys: bson.D{{Key: "username", Value: 1}}, unique: true, required: true},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Roles }, keys: bson.D{{Key: "name", Value: 1}}, unique: true},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Permissions }, keys: bson.D{{Key: "resource", Value: 1}, {Key: "action", Value: 1}}, unique: true},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Tokens }, keys: bson.D{{Key: "digest", Value: 1}}, unique: true},
	{collection: func(m *MongoDB) *mongo.Collection { return m.Tokens }, keys: bson.D{{Key: "user_id", Value: 1}, {Key: "type", Value: 1}}},
	// Expired tokens are removed by MongoDB.
	{collection: func(m *MongoDB) *mongo.Collection { return m.Tokens }, keys: bson.D{{Key: "expires_at", Value: 1}}, expireNow: true},
}

// createIndexes creates the indexes in indexSpecs. Only required indexes fail
// the connection.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	for _, spec := range indexSpecs {
		opts := options.Index()
		if spec.unique {
			opts.SetUnique(true)
		}
		if spec.expireNow {
			opts.SetExpireAfterSeconds(0)
		}
		_, err := spec.collection(m).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.keys, Options: opts})
		if err != nil && spec.required {
			return err
		}
	}
	return nil
}

// activityExpiryIndex is the name of the TTL index on activity timestamps.
const activityExpiryIndex = "activity_expiry"

// SetActivityRetention makes MongoDB remove activity entries older than
// retention. A changed retention replaces the existing expiry index.
func (m *MongoDB) SetActivityRetention(ctx context.Context, retention time.Duration) error {
	if retention < time.Second {
		return fmt.Errorf("activity retention %s is too short", retention)
	}
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetName(activityExpiryIndex).SetExpireAfterSeconds(int32(retention.Seconds())),
	}

	_, err := m.Activity.Indexes().CreateOne(ctx, index)
	var cmdErr mongo.CommandError
	if !errors.As(err, &cmdErr) || (cmdErr.Code != codeIndexOptionsConflict && cmdErr.Code != codeIndexKeySpecsConflict) {
		return err
	}

	if _, err := m.Activity.Indexes().DropOne(ctx, activityExpiryIndex); err != nil {
		return fmt.Errorf("drop activity expiry index: %w", err)
	}
	_, err = m.Activity.Indexes().CreateOne(ctx, index)
	return err
}

// MongoDB server error codes for an index that exists with other options.
const (
	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}
