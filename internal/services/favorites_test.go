package services

import (
	"testing"

	"github.com/courtlab/backend/internal/models"
)

func assertList(t *testing.T, got []string, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func createFavoritesOwner(t *testing.T, service *ProfileService, email string) uint {
	t.Helper()
	profile, err := service.Create(ProfilePayload{
		Name:     stringPtr("Fav Owner"),
		Email:    stringPtr(email),
		Password: stringPtr("secret789"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return profile.ID
}

func TestFavoritesReplaceAll(t *testing.T) {
	db := setupServiceDB(t)
	profiles := NewProfileService(db)
	service := NewFavoritesService(db)
	userID := createFavoritesOwner(t, profiles, "replace@example.com")

	t.Run("dedupes preserving first-seen order and drops empties", func(t *testing.T) {
		stored, err := service.ReplaceAll(userID, []string{"a", "b", "a", "", "c"})
		if err != nil {
			t.Fatalf("replace failed: %v", err)
		}
		assertList(t, stored, []string{"a", "b", "c"})

		listed, err := service.List(userID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		assertList(t, listed, []string{"a", "b", "c"})
	})

	t.Run("writes dense zero-based positions", func(t *testing.T) {
		var favorites []models.Favorite
		if err := db.Where("user_id = ?", userID).Order("position ASC").Find(&favorites).Error; err != nil {
			t.Fatalf("query failed: %v", err)
		}
		for i, favorite := range favorites {
			if favorite.Position != i {
				t.Fatalf("expected dense positions, got %+v", favorites)
			}
		}
	})

	t.Run("a second replace discards the old list entirely", func(t *testing.T) {
		stored, err := service.ReplaceAll(userID, []string{"z", "a"})
		if err != nil {
			t.Fatalf("replace failed: %v", err)
		}
		assertList(t, stored, []string{"z", "a"})
	})

	t.Run("replacing with an empty list clears the rows", func(t *testing.T) {
		stored, err := service.ReplaceAll(userID, nil)
		if err != nil {
			t.Fatalf("replace failed: %v", err)
		}
		assertList(t, stored, []string{})
	})
}

func TestFavoritesToggle(t *testing.T) {
	db := setupServiceDB(t)
	profiles := NewProfileService(db)
	service := NewFavoritesService(db)
	userID := createFavoritesOwner(t, profiles, "toggle@example.com")

	if _, err := service.ReplaceAll(userID, []string{"a", "b", "c"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("toggling an unfavorited drill appends it at the end", func(t *testing.T) {
		refreshed, err := service.Toggle(userID, "d")
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		assertList(t, refreshed, []string{"a", "b", "c", "d"})
	})

	t.Run("toggling it again removes it", func(t *testing.T) {
		refreshed, err := service.Toggle(userID, "d")
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		assertList(t, refreshed, []string{"a", "b", "c"})
	})

	t.Run("append after a removal keeps going from the max position", func(t *testing.T) {
		if _, err := service.Toggle(userID, "a"); err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		refreshed, err := service.Toggle(userID, "e")
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		assertList(t, refreshed, []string{"b", "c", "e"})
	})

	t.Run("empty drill id is a no-op returning the current list", func(t *testing.T) {
		refreshed, err := service.Toggle(userID, "  ")
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		assertList(t, refreshed, []string{"b", "c", "e"})
	})

	t.Run("toggle on an empty list starts at position zero", func(t *testing.T) {
		other := createFavoritesOwner(t, profiles, "toggle-empty@example.com")
		refreshed, err := service.Toggle(other, "solo")
		if err != nil {
			t.Fatalf("toggle failed: %v", err)
		}
		assertList(t, refreshed, []string{"solo"})

		var favorite models.Favorite
		if err := db.First(&favorite, "user_id = ? AND drill_id = ?", other, "solo").Error; err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if favorite.Position != 0 {
			t.Fatalf("expected position 0, got %d", favorite.Position)
		}
	})
}
