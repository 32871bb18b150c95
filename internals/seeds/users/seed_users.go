package users

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"youthcentre_backend/internals/features/users/model"
	"youthcentre_backend/internals/logger"
)

type UserSeed struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Wilaya    *string `json:"wilaya"`
	Commune   *string `json:"commune"`
}

// SeedUsersFromJSON bulk-inserts demo users; rows whose email exists are skipped.
func SeedUsersFromJSON(db *gorm.DB, filePath string) error {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []UserSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	rows := make([]model.UserModel, 0, len(seeds))
	for _, s := range seeds {
		email := strings.ToLower(strings.TrimSpace(s.Email))
		rows = append(rows, model.UserModel{
			ID:        uuid.New(),
			FirstName: s.FirstName,
			LastName:  s.LastName,
			Email:     &email,
			Phone:     s.Phone,
			Wilaya:    s.Wilaya,
			Commune:   s.Commune,
			IsActive:  true,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	res := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert users: %w", res.Error)
	}
	logger.Named("seed").Infof("users: seeded %d", res.RowsAffected)
	return nil
}
