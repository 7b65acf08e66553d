package services

import (
	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/repositories"
)

type ReviewService struct {
	reviewRepo *repositories.ReviewRepository
	userStore  UserStore
	notifier   Notifier
	publisher  EventPublisher
}

func NewReviewService(reviewRepo *repositories.ReviewRepository, userStore UserStore, notifier Notifier, publisher EventPublisher) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userStore:  userStore,
		notifier:   notifier,
		publisher:  publisher,
	}
}

func (rs *ReviewService) ListForUser(userID uint) ([]models.ReviewWithReviewer, error) {
	return rs.reviewRepo.ListForUser(userID)
}

func (rs *ReviewService) ListMine(reviewerID uint) ([]models.ReviewWithReviewed, error) {
	return rs.reviewRepo.ListByReviewer(reviewerID)
}

func (rs *ReviewService) Create(reviewerID uint, body *models.CreateReviewRequestBody) (*models.Review, error) {
	if body.ReviewedUserID == 0 || body.Rating == 0 {
		return nil, errs.ErrAllFieldsRequired
	}
	if body.Rating < 1 || body.Rating > 5 {
		return nil, errs.ErrRatingOutOfRange
	}
	if reviewerID == body.ReviewedUserID {
		return nil, errs.ErrSelfReview
	}

	reviewed, err := rs.userStore.GetUserByID(body.ReviewedUserID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ReviewerID:      reviewerID,
		ReviewedUserID:  reviewed.ID,
		Rating:          body.Rating,
		Comment:         body.Comment,
		TransactionType: body.TransactionType,
		TransactionID:   body.TransactionID,
	}
	if err := rs.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	link := "/profile"
	rs.notifier.Notify(reviewed.ID, &reviewerID, "review", "New review",
		"You received a new review", &link)
	rs.publisher.Publish("review.created", review)

	return review, nil
}
