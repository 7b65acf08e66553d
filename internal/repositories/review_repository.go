package repositories

import (
	"gorm.io/gorm"

	"hive/internal/errs"
	"hive/internal/models"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

func (rr *ReviewRepository) ListForUser(userID uint) ([]models.ReviewWithReviewer, error) {
	reviews := []models.ReviewWithReviewer{}
	err := rr.db.
		Table("reviews").
		Select("reviews.*, users.first_name AS reviewer_first_name, "+
			"users.last_name AS reviewer_last_name, users.profile_picture AS reviewer_picture").
		Joins("JOIN users ON users.id = reviews.reviewer_id").
		Where("reviews.reviewed_user_id = ?", userID).
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (rr *ReviewRepository) ListByReviewer(reviewerID uint) ([]models.ReviewWithReviewed, error) {
	reviews := []models.ReviewWithReviewed{}
	err := rr.db.
		Table("reviews").
		Select("reviews.*, users.first_name AS reviewed_first_name, "+
			"users.last_name AS reviewed_last_name").
		Joins("JOIN users ON users.id = reviews.reviewed_user_id").
		Where("reviews.reviewer_id = ?", reviewerID).
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create inserts the review and recomputes the reviewed user's average
// rating in the same transaction. A second review of the same transaction by
// the same reviewer is rejected.
func (rr *ReviewRepository) Create(review *models.Review) error {
	return rr.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		duplicateQuery := tx.Model(&models.Review{}).
			Where("reviewer_id = ? AND reviewed_user_id = ?", review.ReviewerID, review.ReviewedUserID)
		if review.TransactionType != nil && review.TransactionID != nil {
			duplicateQuery = duplicateQuery.
				Where("transaction_type = ? AND transaction_id = ?", *review.TransactionType, *review.TransactionID)
		}
		if err := duplicateQuery.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.ErrDuplicateReview
		}

		if err := tx.Create(review).Error; err != nil {
			return err
		}

		var average float64
		err := tx.Model(&models.Review{}).
			Where("reviewed_user_id = ?", review.ReviewedUserID).
			Select("AVG(rating)").
			Scan(&average).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", review.ReviewedUserID).
			Update("rating", average).Error
	})
}
