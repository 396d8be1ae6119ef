package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	applog "atelier/internal/log"
	"atelier/models"
)

// RncpSample is one certification seeded with its competency reference.
type RncpSample struct {
	Code        string
	Label       string
	Level       string
	Active      bool
	ExpiresAt   time.Time
	ReacPayload map[string]any
}

// SampleRncpTitles returns the certifications loaded by SeedRncpTitles.
func SampleRncpTitles() []RncpSample {
	return []RncpSample{
		{
			Code:      "RNCP17791",
			Label:     "Chef(fe) de projet digital",
			Level:     "7",
			Active:    true,
			ExpiresAt: time.Date(2027, time.December, 31, 23, 59, 59, 999_000_000, time.UTC),
			ReacPayload: map[string]any{
				"provider":     "France Compétences",
				"lastRevision": "2023-05-12",
				"eligibility":  []any{"CPF", "Contrat de professionnalisation"},
			},
		},
		{
			Code:      "RNCP34079",
			Label:     "Data analyst",
			Level:     "6",
			Active:    true,
			ExpiresAt: time.Date(2026, time.August, 31, 23, 59, 59, 999_000_000, time.UTC),
			ReacPayload: map[string]any{
				"provider":     "France Compétences",
				"lastRevision": "2022-11-01",
				"eligibility":  []any{"CPF"},
			},
		},
	}
}

// SeedRncpTitles upserts the sample titles by code and their REAC cache by
// title. Running it again updates the rows in place.
func SeedRncpTitles(ctx context.Context, database *gorm.DB) error {
	if database == nil {
		return ErrNoDatabase
	}

	tx := database.WithContext(ctx)
	for _, sample := range SampleRncpTitles() {
		level := sample.Level
		expiresAt := sample.ExpiresAt
		title := models.RncpTitle{
			Code:      sample.Code,
			Label:     sample.Label,
			Level:     &level,
			Active:    sample.Active,
			ExpiresAt: &expiresAt,
		}
		if err := models.Validate(&title); err != nil {
			return fmt.Errorf("validate rncp title %s: %w", sample.Code, err)
		}

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "level", "active", "expires_at", "updated_at"}),
		}).Create(&title).Error
		if err != nil {
			return fmt.Errorf("upsert rncp title %s: %w", sample.Code, err)
		}

		var stored models.RncpTitle
		if err := tx.Where("code = ?", sample.Code).First(&stored).Error; err != nil {
			return fmt.Errorf("load rncp title %s: %w", sample.Code, err)
		}

		cache := models.ReacCache{
			RncpTitleID: stored.ID,
			Payload:     sample.ReacPayload,
			FetchedAt:   time.Now().UTC(),
		}
		if err := models.Validate(&cache); err != nil {
			return fmt.Errorf("validate reac cache %s: %w", sample.Code, err)
		}

		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rncp_title_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "fetched_at"}),
		}).Create(&cache).Error
		if err != nil {
			return fmt.Errorf("upsert reac cache %s: %w", sample.Code, err)
		}

		applog.Debug(ctx, "seeded rncp title", "code", stored.Code, "id", stored.ID)
	}

	return nil
}
