package repositories

import (
	"errors"
	"math"
	"testing"

	"hive/internal/errs"
	"hive/internal/models"
)

func TestCreateReviewRecomputesAverageRating(t *testing.T) {
	db := openTestDB(t)
	repo := NewReviewRepository(db)
	alice := createTestUser(t, db, "alice@example.com", "Alice", "Ames")
	bob := createTestUser(t, db, "bob@example.com", "Bob", "Brown")
	carol := createTestUser(t, db, "carol@example.com", "Carol", "Clark")

	if err := repo.Create(&models.Review{ReviewerID: alice.ID, ReviewedUserID: bob.ID, Rating: 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Create(&models.Review{ReviewerID: carol.ID, ReviewedUserID: bob.ID, Rating: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reviewed models.User
	if err := db.First(&reviewed, bob.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if math.Abs(reviewed.Rating-3.5) > 1e-9 {
		t.Errorf("expected rating 3.5, got %v", reviewed.Rating)
	}
}

func TestCreateReviewRejectsDuplicateForSameTransaction(t *testing.T) {
	db := openTestDB(t)
	repo := NewReviewRepository(db)
	alice := createTestUser(t, db, "alice@example.com", "Alice", "Ames")
	bob := createTestUser(t, db, "bob@example.com", "Bob", "Brown")

	transactionType := "deal"
	transactionID := uint(7)
	first := &models.Review{
		ReviewerID:      alice.ID,
		ReviewedUserID:  bob.ID,
		Rating:          4,
		TransactionType: &transactionType,
		TransactionID:   &transactionID,
	}
	if err := repo.Create(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	duplicate := &models.Review{
		ReviewerID:      alice.ID,
		ReviewedUserID:  bob.ID,
		Rating:          1,
		TransactionType: &transactionType,
		TransactionID:   &transactionID,
	}
	err := repo.Create(duplicate)
	if !errors.Is(err, errs.ErrDuplicateReview) {
		t.Fatalf("expected ErrDuplicateReview, got %v", err)
	}

	// The rejected insert must not have touched the average.
	var reviewed models.User
	if err := db.First(&reviewed, bob.ID).Error; err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if math.Abs(reviewed.Rating-4) > 1e-9 {
		t.Errorf("expected rating 4, got %v", reviewed.Rating)
	}
}

func TestListForUserJoinsReviewerNames(t *testing.T) {
	db := openTestDB(t)
	repo := NewReviewRepository(db)
	alice := createTestUser(t, db, "alice@example.com", "Alice", "Ames")
	bob := createTestUser(t, db, "bob@example.com", "Bob", "Brown")

	comment := "great neighbor"
	if err := repo.Create(&models.Review{ReviewerID: alice.ID, ReviewedUserID: bob.ID, Rating: 5, Comment: &comment}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reviews, err := repo.ListForUser(bob.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected 1 review, got %d", len(reviews))
	}
	if reviews[0].ReviewerFirstName != "Alice" || reviews[0].ReviewerLastName != "Ames" {
		t.Errorf("reviewer name not joined in: %+v", reviews[0])
	}
	if reviews[0].Comment == nil || *reviews[0].Comment != comment {
		t.Errorf("comment not carried through: %+v", reviews[0].Comment)
	}

	// The reviewer's own listing shows who they reviewed.
	byReviewer, err := repo.ListByReviewer(alice.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(byReviewer) != 1 || byReviewer[0].ReviewedFirstName != "Bob" {
		t.Fatalf("unexpected reviewer listing: %+v", byReviewer)
	}
}
