package repositories

import (
	"errors"

	"gorm.io/gorm"

	"hive/internal/errs"
	"hive/internal/models"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(user *models.User) error {
	return ar.db.Create(user).Error
}

func (ar *AuthenticationRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := ar.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (ar *AuthenticationRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	result := ar.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (ar *AuthenticationRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := ar.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ar *AuthenticationRepository) UpdateProfile(userID uint, body *models.UpdateProfileRequestBody) error {
	return ar.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"first_name": body.FirstName,
		"last_name":  body.LastName,
		"bio":        body.Bio,
		"phone":      body.Phone,
		"address":    body.Address,
	}).Error
}

func (ar *AuthenticationRepository) UpdatePasswordHash(userID uint, passwordHash string) error {
	return ar.db.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}

// ListRecentUsers returns the newest registered users excluding the caller.
func (ar *AuthenticationRepository) ListRecentUsers(excludeUserID uint, limit int) ([]models.User, error) {
	var users []models.User
	err := ar.db.
		Where("id != ?", excludeUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (ar *AuthenticationRepository) SearchUsers(term string, excludeUserID uint, limit int) ([]models.User, error) {
	var users []models.User
	pattern := "%" + term + "%"
	err := ar.db.
		Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(bio) LIKE ?) AND id != ?",
			pattern, pattern, pattern, excludeUserID).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
