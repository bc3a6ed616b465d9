package users

import (
	"github.com/angelmondragon/storegate/pkg/enums"
	"github.com/angelmondragon/storegate/pkg/normalize"
)

// NormalizeAdminUser converts one raw account record from the admin listing.
// Accounts predating the rename from username still resolve a display name,
// and records without a role fall back to the plain user role.
func NormalizeAdminUser(o normalize.Object) AdminUser {
	return AdminUser{
		ID:        o.String("id", "_id"),
		Name:      o.String("name", "username"),
		Email:     o.String("email"),
		Role:      enums.UserRoleOrDefault(o.String("role")),
		Address:   o.String("address"),
		Phone:     o.String("phone"),
		Bio:       o.String("bio"),
		CreatedAt: o.String("createdAt", "created_at"),
		UpdatedAt: o.String("updatedAt", "updated_at"),
	}
}

// NormalizeProfile converts the caller's own account record. Optional contact
// fields keep absence observable so the rendering layer can distinguish
// "never set" from "set to empty".
func NormalizeProfile(o normalize.Object) Profile {
	return Profile{
		ID:        o.String("id", "_id"),
		Email:     o.String("email"),
		Name:      o.String("name"),
		Role:      enums.UserRoleOrDefault(o.String("role")),
		Avatar:    o.StringPtr("avatar", "photo", "image"),
		Phone:     o.StringPtr("phone", "phoneNumber"),
		Address:   o.StringPtr("address", "location"),
		CreatedAt: o.String("createdAt", "created_at"),
		UpdatedAt: o.String("updatedAt", "updated_at"),
	}
}
