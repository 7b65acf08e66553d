package repositories

import (
	"time"

	"gorm.io/gorm"

	"hive/internal/errs"
	"hive/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

func (nr *NotificationRepository) Create(notification *models.Notification) error {
	return nr.db.Create(notification).Error
}

func (nr *NotificationRepository) ListForUser(userID uint, limit int) ([]models.NotificationWithSender, error) {
	notifications := []models.NotificationWithSender{}
	err := nr.db.
		Table("notifications").
		Select("notifications.*, users.first_name, users.last_name").
		Joins("LEFT JOIN users ON users.id = notifications.from_user_id").
		Where("notifications.user_id = ?", userID).
		Order("notifications.created_at DESC").
		Limit(limit).
		Scan(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead is scoped to the owner; marking someone else's notification is
// reported as not found.
func (nr *NotificationRepository) MarkRead(notificationID, userID uint) error {
	result := nr.db.
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotificationNotFound
	}
	return nil
}

func (nr *NotificationRepository) MarkAllRead(userID uint) error {
	return nr.db.
		Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", time.Now()).Error
}
