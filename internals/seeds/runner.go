package seeds

import (
	"path/filepath"

	"gorm.io/gorm"

	"youthcentre_backend/internals/seeds/admins"
	"youthcentre_backend/internals/seeds/users"
	"youthcentre_backend/internals/seeds/youth_centres"
)

// RunAllSeeds loads the JSON fixtures under dir (normally internals/seeds/data).
// Order matters: admins reference centres by slug.
func RunAllSeeds(db *gorm.DB, dir string) error {
	if dir == "" {
		dir = "internals/seeds/data"
	}
	if err := youth_centres.SeedYouthCentresFromJSON(db, filepath.Join(dir, "data_youth_centres.json")); err != nil {
		return err
	}
	if err := admins.SeedAdminsFromJSON(db, filepath.Join(dir, "data_admins.json")); err != nil {
		return err
	}
	return users.SeedUsersFromJSON(db, filepath.Join(dir, "data_users.json"))
}
