package services

import (
	"strings"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/repositories"
)

type PostService struct {
	postRepo  *repositories.PostRepository
	notifier  Notifier
	publisher EventPublisher
}

func NewPostService(postRepo *repositories.PostRepository, notifier Notifier, publisher EventPublisher) *PostService {
	return &PostService{
		postRepo:  postRepo,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (ps *PostService) ListFeed(page, size int) ([]models.PostWithCounts, error) {
	return ps.postRepo.ListFeed(page, size)
}

func (ps *PostService) ListMine(userID uint) ([]models.PostWithCounts, error) {
	return ps.postRepo.ListByUser(userID)
}

func (ps *PostService) Create(userID uint, body *models.CreatePostRequestBody) (*models.Post, error) {
	if strings.TrimSpace(body.Content) == "" {
		return nil, errs.ErrContentRequired
	}

	postType := body.Type
	if postType == "" {
		postType = "post"
	}
	post := &models.Post{
		UserID:  userID,
		Content: body.Content,
		Type:    postType,
	}
	if err := ps.postRepo.Create(post); err != nil {
		return nil, err
	}

	ps.publisher.Publish("post.created", post)
	return post, nil
}

// Like records a like; liking the same post twice is a no-op.
func (ps *PostService) Like(postID, userID uint) error {
	post, err := ps.postRepo.GetByID(postID)
	if err != nil {
		return err
	}
	if err := ps.postRepo.Like(post.ID, userID); err != nil {
		return err
	}

	if post.UserID != userID {
		link := "/community"
		ps.notifier.Notify(post.UserID, &userID, "like", "New like",
			"Someone liked your post", &link)
	}
	ps.publisher.Publish("post.liked", map[string]uint{"post_id": post.ID, "user_id": userID})
	return nil
}
