package services

import (
	"log"

	"hive/internal/models"
	"hive/internal/repositories"
)

const notificationListLimit = 50

type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	publisher        EventPublisher
}

func NewNotificationService(notificationRepo *repositories.NotificationRepository, publisher EventPublisher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

func (ns *NotificationService) ListForUser(userID uint) ([]models.NotificationWithSender, error) {
	return ns.notificationRepo.ListForUser(userID, notificationListLimit)
}

func (ns *NotificationService) MarkRead(notificationID, userID uint) error {
	return ns.notificationRepo.MarkRead(notificationID, userID)
}

func (ns *NotificationService) MarkAllRead(userID uint) error {
	return ns.notificationRepo.MarkAllRead(userID)
}

// Notify writes a notification row and publishes the matching event.
// Best-effort: a failure is logged and swallowed so the triggering operation
// never fails because of it.
func (ns *NotificationService) Notify(userID uint, fromUserID *uint, notificationType, title, message string, link *string) {
	notification := &models.Notification{
		UserID:     userID,
		FromUserID: fromUserID,
		Type:       notificationType,
		Title:      title,
		Message:    message,
		Link:       link,
	}
	if err := ns.notificationRepo.Create(notification); err != nil {
		log.Printf("Failed to create %s notification for user %d: %v", notificationType, userID, err)
		return
	}
	ns.publisher.Publish("notification.created", notification)
}
