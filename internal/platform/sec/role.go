// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Staff Roles

// UserRole is the authorization level carried in a token.
type UserRole string

const (
	// Full access to the admin dashboard, including deletes.
	RoleAdmin UserRole = "admin"

	// Can curate catalog reference data (authors, translators, categories, publishers).
	RoleEditor UserRole = "editor"

	// Regular shopper account
	RoleCustomer UserRole = "customer"
)

// AtLeast reports whether r meets or exceeds target.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleEditor:
		return 20
	case RoleCustomer:
		return 10
	default:
		return 0
	}
}
