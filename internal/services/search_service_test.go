package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"hive/internal/models"
	"hive/internal/repositories"
	"hive/internal/servers/database"
)

func newSearchServiceFixture(t *testing.T) (*SearchService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	service := NewSearchService(
		repositories.NewAuthenticationRepository(db),
		repositories.NewSkillRepository(db),
		repositories.NewDealRepository(db),
		repositories.NewEventRepository(db),
	)
	return service, db
}

func seedSearchData(t *testing.T, db *gorm.DB) (caller *models.User) {
	t.Helper()
	caller = &models.User{Email: "me@example.com", PasswordHash: "x", FirstName: "Mona", LastName: "Marsh"}
	gardener := &models.User{Email: "gardener@example.com", PasswordHash: "x", FirstName: "Garden", LastName: "Green"}
	for _, user := range []*models.User{caller, gardener} {
		if err := db.Create(user).Error; err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}
	}
	skill := &models.Skill{UserID: gardener.ID, Title: "Garden design", Category: "outdoors", IsOffering: true}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("failed to seed skill: %v", err)
	}
	deal := &models.Deal{CreatorID: gardener.ID, Title: "Garden soil bulk buy", Deadline: time.Now().Add(24 * time.Hour)}
	if err := db.Create(deal).Error; err != nil {
		t.Fatalf("failed to seed deal: %v", err)
	}
	event := &models.Event{CreatorID: gardener.ID, Title: "Community garden day", EventDate: time.Now().Add(48 * time.Hour)}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to seed event: %v", err)
	}
	return caller
}

func TestSearchEmptyQueryReturnsEmptyBuckets(t *testing.T) {
	service, db := newSearchServiceFixture(t)
	caller := seedSearchData(t, db)

	response, err := service.Search(caller.ID, "   ", "all", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Users == nil || response.Skills == nil || response.Deals == nil || response.Events == nil {
		t.Fatal("buckets must be empty slices, not nil")
	}
	if len(response.Users)+len(response.Skills)+len(response.Deals)+len(response.Events) != 0 {
		t.Fatalf("expected empty buckets, got %+v", response)
	}
}

func TestSearchAllBucketsCaseInsensitive(t *testing.T) {
	service, db := newSearchServiceFixture(t)
	caller := seedSearchData(t, db)

	response, err := service.Search(caller.ID, "GARDEN", "all", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Users) != 1 {
		t.Errorf("expected 1 user hit, got %d", len(response.Users))
	}
	if len(response.Skills) != 1 {
		t.Errorf("expected 1 skill hit, got %d", len(response.Skills))
	}
	if len(response.Deals) != 1 {
		t.Errorf("expected 1 deal hit, got %d", len(response.Deals))
	}
	if len(response.Events) != 1 {
		t.Errorf("expected 1 event hit, got %d", len(response.Events))
	}
}

func TestSearchTypeFilterRestrictsBuckets(t *testing.T) {
	service, db := newSearchServiceFixture(t)
	caller := seedSearchData(t, db)

	response, err := service.Search(caller.ID, "garden", "skills", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Skills) != 1 {
		t.Errorf("expected 1 skill hit, got %d", len(response.Skills))
	}
	if len(response.Users)+len(response.Deals)+len(response.Events) != 0 {
		t.Errorf("non-requested buckets must stay empty, got %+v", response)
	}
}

func TestSearchExcludesCaller(t *testing.T) {
	service, db := newSearchServiceFixture(t)
	caller := seedSearchData(t, db)

	// The caller's own profile matches the term but is filtered out.
	response, err := service.Search(caller.ID, "marsh", "users", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(response.Users) != 0 {
		t.Fatalf("caller must not appear in their own search, got %+v", response.Users)
	}
}
