package admins

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/admins/model"
	centreModel "youthcentre_backend/internals/features/youth_centres/model"
	"youthcentre_backend/internals/logger"
)

type AdminSeed struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	IsSuperAdmin bool   `json:"is_super_admin"`
	// CentreSlug binds a regular admin; ignored for super admins.
	CentreSlug string `json:"centre_slug"`
}

// SeedAdminsFromJSON inserts admins by email, skipping existing ones.
// Youth centres must be seeded first.
func SeedAdminsFromJSON(db *gorm.DB, filePath string) error {
	log := logger.Named("seed")
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []AdminSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	inserted := 0
	for _, s := range seeds {
		email := strings.ToLower(strings.TrimSpace(s.Email))
		var count int64
		if err := db.Model(&model.AdminModel{}).Where("LOWER(email) = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", email, err)
		}
		a := model.AdminModel{
			ID:           uuid.New(),
			Name:         s.Name,
			Email:        email,
			PasswordHash: string(hash),
			IsSuperAdmin: s.IsSuperAdmin,
			IsActive:     true,
		}
		if !s.IsSuperAdmin && s.CentreSlug != "" {
			var c centreModel.YouthCentreModel
			err := db.Select("id").Where("slug = ?", s.CentreSlug).First(&c).Error
			switch {
			case err == nil:
				a.YouthCentreID = &c.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				log.Warnw("admin seed references unknown centre", "email", email, "centre_slug", s.CentreSlug)
			default:
				return err
			}
		}
		if err := db.Create(&a).Error; err != nil {
			return fmt.Errorf("insert admin %s: %w", email, err)
		}
		inserted++
	}
	log.Infof("admins: seeded %d", inserted)
	return nil
}
