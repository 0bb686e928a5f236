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

// AccessRepositoryInterface defines the interface for roles and permissions.
type AccessRepositoryInterface interface {
	EnsurePermission(ctx context.Context, permission *model.Permission) error
	EnsureRole(ctx context.Context, role *model.Role) error
	FindRoleByName(ctx context.Context, name string) (*model.Role, error)
	FindRolesByIDs(ctx context.Context, ids []string) ([]*model.Role, error)
	FindPermissionsByIDs(ctx context.Context, ids []string) ([]*model.Permission, error)
}

// AccessRepository stores roles and permissions in their own collections.
type AccessRepository struct {
	roles       *mongo.Collection
	permissions *mongo.Collection
}

// NewAccessRepository creates a new access repository.
func NewAccessRepository(db *MongoDB) *AccessRepository {
	return &AccessRepository{
		roles:       db.Roles,
		permissions: db.Permissions,
	}
}

var upsertAfter = options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

// EnsurePermission creates the permission for resource and action, or updates
// its description. permission is filled with the stored document.
func (r *AccessRepository) EnsurePermission(ctx context.Context, permission *model.Permission) error {
	now := time.Now()
	return r.permissions.FindOneAndUpdate(ctx,
		bson.M{"resource": permission.Resource, "action": permission.Action},
		bson.M{
			"$set": bson.M{
				"description": permission.Description,
				"active":      true,
				"updated_at":  now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		upsertAfter,
	).Decode(permission)
}

// EnsureRole creates the role by name, or replaces the permissions of the
// existing one. role is filled with the stored document.
func (r *AccessRepository) EnsureRole(ctx context.Context, role *model.Role) error {
	now := time.Now()
	permissions := role.Permissions
	if permissions == nil {
		permissions = []string{}
	}
	return r.roles.FindOneAndUpdate(ctx,
		bson.M{"name": role.Name},
		bson.M{
			"$set": bson.M{
				"description": role.Description,
				"permissions": permissions,
				"active":      true,
				"updated_at":  now,
			},
			"$setOnInsert": bson.M{"created_at": now},
		},
		upsertAfter,
	).Decode(role)
}

// FindRoleByName returns the named role, or nil, nil when it does not exist.
func (r *AccessRepository) FindRoleByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := r.roles.FindOne(ctx, bson.M{"name": name}).Decode(&role)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// FindRolesByIDs returns the active roles among ids. Malformed IDs are skipped.
func (r *AccessRepository) FindRolesByIDs(ctx context.Context, ids []string) ([]*model.Role, error) {
	var roles []*model.Role
	if err := findActiveByIDs(ctx, r.roles, ids, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// FindPermissionsByIDs returns the active permissions among ids.
func (r *AccessRepository) FindPermissionsByIDs(ctx context.Context, ids []string) ([]*model.Permission, error) {
	var permissions []*model.Permission
	if err := findActiveByIDs(ctx, r.permissions, ids, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

func findActiveByIDs(ctx context.Context, collection *mongo.Collection, ids []string, results interface{}) error {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, idStr := range ids {
		if id, err := primitive.ObjectIDFromHex(idStr); err == nil {
			objectIDs = append(objectIDs, id)
		}
	}

	cursor, err := collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}, "active": true})
	if err != nil {
		return err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	return cursor.All(ctx, results)
}
