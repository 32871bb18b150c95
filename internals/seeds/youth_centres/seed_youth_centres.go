package youth_centres

import (
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthcentre_backend/internals/features/youth_centres/model"
	helper "youthcentre_backend/internals/helpers"
	"youthcentre_backend/internals/logger"
)

type YouthCentreSeed struct {
	Name     string  `json:"name"`
	Wilaya   *string `json:"wilaya"`
	Commune  *string `json:"commune"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Capacity *int    `json:"capacity"`
}

// SeedYouthCentresFromJSON inserts centres whose slug is not taken yet.
func SeedYouthCentresFromJSON(db *gorm.DB, filePath string) error {
	log := logger.Named("seed")
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filePath, err)
	}
	var seeds []YouthCentreSeed
	if err := sonic.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("decode %s: %w", filePath, err)
	}

	var existing []string
	if err := db.Unscoped().Model(&model.YouthCentreModel{}).Pluck("slug", &existing).Error; err != nil {
		return err
	}
	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}

	var rows []model.YouthCentreModel
	for _, s := range seeds {
		slug := helper.Slugify(s.Name, 120)
		if taken[slug] {
			continue
		}
		taken[slug] = true
		rows = append(rows, model.YouthCentreModel{
			ID:       uuid.New(),
			Name:     strings.TrimSpace(s.Name),
			Slug:     slug,
			Wilaya:   s.Wilaya,
			Commune:  s.Commune,
			Address:  s.Address,
			Phone:    s.Phone,
			Capacity: s.Capacity,
			IsActive: true,
		})
	}
	if len(rows) == 0 {
		log.Info("youth centres: nothing new to seed")
		return nil
	}
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert youth centres: %w", err)
	}
	log.Infof("youth centres: seeded %d", len(rows))
	return nil
}
