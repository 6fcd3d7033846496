package services

import (
	"context"
	"testing"

	"keliauk/internal/models/db_models"
)

func TestRecommend(t *testing.T) {
	attractions := []db_models.Attraction{
		newTestAttraction("Kryžių kalnas", 4.5, "istorija"),
		newTestAttraction("Trakų pilis", 4.8, "istorija"),
		newTestAttraction("Parnidžio kopa", 4.6, "gamta"),
		newTestAttraction("Aukštumalos takas", 4.3, "gamta"),
	}
	service := NewRecommendationService(&fakeAttractionRepo{attractions: attractions})
	ctx := context.Background()

	t.Run("top rated overall", func(t *testing.T) {
		got, err := service.Recommend(ctx, "", 2)
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Name != "Trakų pilis" || got[1].Name != "Parnidžio kopa" {
			t.Errorf("order = %q, %q", got[0].Name, got[1].Name)
		}
	})

	t.Run("within a category", func(t *testing.T) {
		got, err := service.Recommend(ctx, "gamta", 5)
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Name != "Parnidžio kopa" {
			t.Errorf("got[0] = %q, want the best rated in the category", got[0].Name)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := service.Recommend(ctx, "istorija", 3)
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		second, err := service.Recommend(ctx, "istorija", 3)
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Name != second[i].Name {
				t.Errorf("run %d: %q vs %q", i, first[i].Name, second[i].Name)
			}
		}
	})

	t.Run("empty category", func(t *testing.T) {
		got, err := service.Recommend(ctx, "pramogos", 3)
		if err != nil {
			t.Fatalf("Recommend: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}
