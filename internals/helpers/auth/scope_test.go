package helper

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type scopedRow struct {
	ID      uuid.UUID
	AdminID uuid.UUID
	EventID uuid.UUID
}

func (scopedRow) TableName() string { return "payments" }

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestScopes(t *testing.T) {
	db := dryRunDB(t)
	regular := Actor{ID: uuid.New()}
	super := Actor{ID: uuid.New(), IsSuperAdmin: true}

	sqlFor := func(scope func(*gorm.DB) *gorm.DB) string {
		return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var rows []scopedRow
			return tx.Model(&scopedRow{}).Scopes(scope).Find(&rows)
		})
	}

	t.Run("owned regular", func(t *testing.T) {
		sql := sqlFor(ScopeOwned(regular, "admin_id"))
		if !strings.Contains(sql, "admin_id = '"+regular.ID.String()+"'") {
			t.Errorf("sql = %s", sql)
		}
	})
	t.Run("owned super", func(t *testing.T) {
		if sql := sqlFor(ScopeOwned(super, "admin_id")); strings.Contains(sql, "WHERE") {
			t.Errorf("super admin should not be filtered: %s", sql)
		}
	})
	t.Run("by activity owner", func(t *testing.T) {
		sql := sqlFor(ScopeByActivityOwner(regular, "event_id"))
		if !strings.Contains(sql, "event_id IN (SELECT id FROM activities WHERE admin_id = '"+regular.ID.String()+"'") {
			t.Errorf("sql = %s", sql)
		}
	})
	t.Run("by activity owner super", func(t *testing.T) {
		if sql := sqlFor(ScopeByActivityOwner(super, "event_id")); strings.Contains(sql, "activities") {
			t.Errorf("super admin should not be filtered: %s", sql)
		}
	})
	t.Run("owned or activity owner", func(t *testing.T) {
		sql := sqlFor(ScopeOwnedOrActivityOwner(regular, "admin_id", "event_id"))
		if !strings.Contains(sql, "(admin_id = '"+regular.ID.String()+"' OR event_id IN (SELECT id FROM activities") {
			t.Errorf("sql = %s", sql)
		}
	})
	t.Run("registered with owner", func(t *testing.T) {
		sql := sqlFor(ScopeRegisteredWithOwner(regular, "id"))
		if !strings.Contains(sql, "JOIN activities a ON a.id = i.activity_id") || !strings.Contains(sql, regular.ID.String()) {
			t.Errorf("sql = %s", sql)
		}
	})
	t.Run("registered with owner super", func(t *testing.T) {
		if sql := sqlFor(ScopeRegisteredWithOwner(super, "id")); strings.Contains(sql, "inscriptions") {
			t.Errorf("super admin should not be filtered: %s", sql)
		}
	})
}
