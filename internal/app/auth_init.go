package app

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// storePermissions are the permissions guarding the administration routes.
var storePermissions = []model.Permission{
	{Resource: "products", Action: "read", Description: "See inactive products"},
	{Resource: "products", Action: "write", Description: "Manage products and categories"},
	{Resource: "orders", Action: "read", Description: "See every order"},
	{Resource: "orders", Action: "write", Description: "Change order status"},
	{Resource: "pricing", Action: "write", Description: "Change tax and shipping settings"},
	{Resource: "dashboard", Action: "read", Description: "See store statistics"},
	{Resource: "activity", Action: "read", Description: "Read the activity journal"},
}

// storeRoles maps each seeded role to its permission keys. A nil list grants
// every store permission.
var storeRoles = []struct {
	name        string
	description string
	permissions []string
}{
	{model.RoleCustomer, "Shopper account", []string{}},
	{model.RoleStaff, "Store staff handling orders", []string{"products:read", "orders:read", "orders:write", "dashboard:read"}},
	{model.RoleAdmin, "Store administrator", nil},
}

// seedAccessControl makes sure the store permissions and roles exist. Role
// permissions are reset to the seeded set on every start.
func seedAccessControl(repo repository.AccessRepositoryInterface) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ids := make(map[string]string, len(storePermissions))
	all := make([]string, 0, len(storePermissions))
	for _, p := range storePermissions {
		perm := p
		if err := repo.EnsurePermission(ctx, &perm); err != nil {
			return fmt.Errorf("seed permission %s: %w", p.Key(), err)
		}
		ids[perm.Key()] = perm.ID.Hex()
		all = append(all, perm.ID.Hex())
	}

	for _, r := range storeRoles {
		role := &model.Role{Name: r.name, Description: r.description, Permissions: all}
		if r.permissions != nil {
			role.Permissions = make([]string, 0, len(r.permissions))
			for _, key := range r.permissions {
				role.Permissions = append(role.Permissions, ids[key])
			}
		}
		if err := repo.EnsureRole(ctx, role); err != nil {
			return fmt.Errorf("seed role %s: %w", r.name, err)
		}
	}

	log.Info().Int("permissions", len(storePermissions)).Int("roles", len(storeRoles)).Msg("Access control seeded")
	return nil
}
