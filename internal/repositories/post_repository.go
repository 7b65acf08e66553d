package repositories

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/utils"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postWithCountsColumns = "posts.id, posts.user_id, posts.content, posts.type, posts.created_at, " +
	"users.first_name, users.last_name, " +
	"COUNT(DISTINCT likes.id) AS likes_count, " +
	"COUNT(DISTINCT comments.id) AS comments_count"

// ListFeed returns the community feed newest first, with like and comment
// counts per post.
func (pr *PostRepository) ListFeed(page, size int) ([]models.PostWithCounts, error) {
	posts := []models.PostWithCounts{}
	err := pr.db.
		Table("posts").
		Select(postWithCountsColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Group("posts.id, users.first_name, users.last_name").
		Order("posts.created_at DESC").
		Scopes(utils.Paginate(page, size)).
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (pr *PostRepository) ListByUser(userID uint) ([]models.PostWithCounts, error) {
	posts := []models.PostWithCounts{}
	err := pr.db.
		Table("posts").
		Select(postWithCountsColumns).
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Where("posts.user_id = ?", userID).
		Group("posts.id, users.first_name, users.last_name").
		Order("posts.created_at DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (pr *PostRepository) Create(post *models.Post) error {
	return pr.db.Create(post).Error
}

func (pr *PostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	result := pr.db.First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPostNotFound
		}
		return nil, result.Error
	}
	return &post, nil
}

// Like records a like. Liking the same post twice is a no-op.
func (pr *PostRepository) Like(postID, userID uint) error {
	return pr.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Like{PostID: postID, UserID: userID}).Error
}
