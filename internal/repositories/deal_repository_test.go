package repositories

import (
	"errors"
	"testing"
	"time"

	"hive/internal/errs"
	"hive/internal/models"
)

func TestJoinDealIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewDealRepository(db)
	alice := createTestUser(t, db, "alice@example.com", "Alice", "Ames")
	bob := createTestUser(t, db, "bob@example.com", "Bob", "Brown")

	deal := &models.Deal{
		CreatorID:     alice.ID,
		Title:         "Bulk olive oil",
		MinimumPeople: 5,
		Deadline:      time.Now().Add(48 * time.Hour),
	}
	if err := repo.Create(deal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.Join(deal.ID, bob.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Join(deal.ID, bob.ID); err != nil {
		t.Fatalf("second join must be a no-op, got %v", err)
	}

	var participants int64
	if err := db.Model(&models.DealParticipant{}).Where("deal_id = ?", deal.ID).Count(&participants).Error; err != nil {
		t.Fatalf("failed to count participants: %v", err)
	}
	if participants != 1 {
		t.Fatalf("expected 1 participant row, got %d", participants)
	}
}

func TestListOpenSkipsExpiredAndCountsParticipants(t *testing.T) {
	db := openTestDB(t)
	repo := NewDealRepository(db)
	alice := createTestUser(t, db, "alice@example.com", "Alice", "Ames")
	bob := createTestUser(t, db, "bob@example.com", "Bob", "Brown")
	carol := createTestUser(t, db, "carol@example.com", "Carol", "Clark")

	open := &models.Deal{CreatorID: alice.ID, Title: "Open deal", Deadline: time.Now().Add(24 * time.Hour)}
	expired := &models.Deal{CreatorID: alice.ID, Title: "Expired deal", Deadline: time.Now().Add(-time.Hour)}
	for _, deal := range []*models.Deal{open, expired} {
		if err := repo.Create(deal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	for _, userID := range []uint{bob.ID, carol.ID} {
		if err := repo.Join(open.ID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	deals, err := repo.ListOpen()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deals) != 1 {
		t.Fatalf("expected only the open deal, got %d", len(deals))
	}
	if deals[0].ID != open.ID {
		t.Errorf("expected deal %d, got %d", open.ID, deals[0].ID)
	}
	if deals[0].CurrentPeople != 2 {
		t.Errorf("expected 2 participants, got %d", deals[0].CurrentPeople)
	}
	if deals[0].FirstName != "Alice" {
		t.Errorf("creator name not joined in: %+v", deals[0])
	}
}

func TestGetDealByID(t *testing.T) {
	db := openTestDB(t)
	repo := NewDealRepository(db)
	alice := createTestUser(t, db, "alice@example.com", "Alice", "Ames")

	deal := &models.Deal{CreatorID: alice.ID, Title: "Firewood split", Deadline: time.Now().Add(time.Hour)}
	if err := repo.Create(deal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.GetByID(deal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Title != "Firewood split" {
		t.Errorf("unexpected deal: %+v", found)
	}

	_, err = repo.GetByID(deal.ID + 100)
	if !errors.Is(err, errs.ErrDealNotFound) {
		t.Fatalf("expected ErrDealNotFound, got %v", err)
	}
}

func TestSearchDealsMatchesTitleCaseInsensitively(t *testing.T) {
	db := openTestDB(t)
	repo := NewDealRepository(db)
	alice := createTestUser(t, db, "alice@example.com", "Alice", "Ames")

	category := "food"
	deals := []*models.Deal{
		{CreatorID: alice.ID, Title: "Olive Oil Group Buy", Category: &category, Deadline: time.Now().Add(time.Hour)},
		{CreatorID: alice.ID, Title: "Ladder share", Deadline: time.Now().Add(time.Hour)},
	}
	for _, deal := range deals {
		if err := repo.Create(deal); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	results, err := repo.Search("olive", nil, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Olive Oil Group Buy" {
		t.Fatalf("unexpected search results: %+v", results)
	}

	other := "tools"
	results, err = repo.Search("olive", &other, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("category filter ignored: %+v", results)
	}
}
