package helper

import (
	"gorm.io/gorm"
)

// ScopeOwned restricts rows to column = actor.ID unless super-admin.
//
//	db.Scopes(helperAuth.ScopeOwned(actor, "admin_id"))
func ScopeOwned(a Actor, column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		owner := a.OwnerFilter()
		if owner == nil {
			return db
		}
		return db.Where(column+" = ?", *owner)
	}
}

// ScopeByActivityOwner restricts rows whose fkColumn points at an activity
// owned by the actor (inscriptions, payments, chats, livestreams).
func ScopeByActivityOwner(a Actor, fkColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		owner := a.OwnerFilter()
		if owner == nil {
			return db
		}
		return db.Where(fkColumn+" IN (SELECT id FROM activities WHERE admin_id = ? AND deleted_at IS NULL)", *owner)
	}
}

// ScopeOwnedOrActivityOwner: own rows, or rows attached to an owned activity.
func ScopeOwnedOrActivityOwner(a Actor, ownerColumn, fkColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		owner := a.OwnerFilter()
		if owner == nil {
			return db
		}
		return db.Where(
			"("+ownerColumn+" = ? OR "+fkColumn+" IN (SELECT id FROM activities WHERE admin_id = ? AND deleted_at IS NULL))",
			*owner, *owner,
		)
	}
}

// ScopeRegisteredWithOwner restricts users to those holding at least one
// inscription on an activity owned by the actor.
func ScopeRegisteredWithOwner(a Actor, userIDColumn string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		owner := a.OwnerFilter()
		if owner == nil {
			return db
		}
		return db.Where(userIDColumn+` IN (
			SELECT i.user_id FROM inscriptions i
			JOIN activities a ON a.id = i.activity_id
			WHERE a.admin_id = ? AND a.deleted_at IS NULL)`, *owner)
	}
}
