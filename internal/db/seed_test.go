package db

import (
	"context"
	"testing"

	"atelier/models"
)

func TestSeedRncpTitlesIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database := openSQLite(t)
	if err := AutoMigrate(database); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	for run := 0; run < 2; run++ {
		if err := SeedRncpTitles(ctx, database); err != nil {
			t.Fatalf("seed run %d: %v", run+1, err)
		}
	}

	var titles []models.RncpTitle
	if err := database.WithContext(ctx).Preload("Reac").Order("code").Find(&titles).Error; err != nil {
		t.Fatalf("query titles: %v", err)
	}
	if len(titles) != len(SampleRncpTitles()) {
		t.Fatalf("expected %d titles, got %d", len(SampleRncpTitles()), len(titles))
	}

	var caches int64
	if err := database.WithContext(ctx).Model(&models.ReacCache{}).Count(&caches).Error; err != nil {
		t.Fatalf("count caches: %v", err)
	}
	if caches != int64(len(titles)) {
		t.Fatalf("expected one cache per title, got %d", caches)
	}

	analyst := titles[1]
	if analyst.Code != "RNCP34079" || analyst.Label != "Data analyst" {
		t.Fatalf("unexpected title %+v", analyst)
	}
	if analyst.Level == nil || *analyst.Level != "6" || !analyst.Active {
		t.Fatalf("unexpected level/active on %+v", analyst)
	}
	if analyst.Reac == nil || analyst.Reac.Payload["provider"] != "France Compétences" {
		t.Fatalf("unexpected reac payload %+v", analyst.Reac)
	}
}

func TestSeedRncpTitlesRequiresDatabase(t *testing.T) {
	t.Parallel()

	if err := SeedRncpTitles(context.Background(), nil); err == nil {
		t.Fatal("expected error without database")
	}
}
