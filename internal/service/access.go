package service

import (
	"context"
	"time"

	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

// RolePermissionsTTL bounds how long a role change takes to reach requests.
const RolePermissionsTTL = 5 * time.Minute

// AccessService answers whether a set of roles grants a permission.
type AccessService interface {
	// Allows reports whether any role in roleIDs grants key ("resource:action").
	Allows(ctx context.Context, roleIDs []string, key string) (bool, error)
	Stop()
}

// AccessServiceImpl resolves roles to permission keys and caches the result
// per role.
type AccessServiceImpl struct {
	repo  repository.AccessRepositoryInterface
	cache *cache.TTLCache[string, map[string]bool]
}

// NewAccessService creates a new access service.
func NewAccessService(repo repository.AccessRepositoryInterface) AccessService {
	return &AccessServiceImpl{
		repo:  repo,
		cache: cache.NewTTLCache[string, map[string]bool]("role_permissions", 32, RolePermissionsTTL),
	}
}

func (s *AccessServiceImpl) Allows(ctx context.Context, roleIDs []string, key string) (bool, error) {
	if s.repo == nil {
		return false, ErrRepositoryNotConfigured
	}
	for _, roleID := range roleIDs {
		keys, err := s.cache.GetOrLoad(roleID, func() (map[string]bool, error) {
			return s.permissionKeys(ctx, roleID)
		})
		if err != nil {
			return false, err
		}
		if keys[key] {
			return true, nil
		}
	}
	return false, nil
}

// permissionKeys loads the keys granted by one role. Unknown and inactive
// roles grant nothing.
func (s *AccessServiceImpl) permissionKeys(ctx context.Context, roleID string) (map[string]bool, error) {
	roles, err := s.repo.FindRolesByIDs(ctx, []string{roleID})
	if err != nil {
		return nil, err
	}
	keys := make(map[string]bool)
	if len(roles) == 0 {
		return keys, nil
	}
	permissions, err := s.repo.FindPermissionsByIDs(ctx, roles[0].Permissions)
	if err != nil {
		return nil, err
	}
	for _, p := range permissions {
		keys[p.Key()] = true
	}
	return keys, nil
}

func (s *AccessServiceImpl) Stop() {
	s.cache.Stop()
}
