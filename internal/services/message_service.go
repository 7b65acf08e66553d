package services

import (
	"strings"

	"hive/internal/errs"
	"hive/internal/models"
)

// MessageStore is the slice of the persistent store the messaging core
// touches. repositories.MessageRepository is the production implementation.
type MessageStore interface {
	Create(message *models.Message) error
	ListConversations(userID uint) ([]models.ConversationSummary, error)
	GetThread(userID, peerID uint) ([]models.Message, error)
	MarkThreadRead(userID, peerID uint) error
	CountUnread(userID uint) (int64, error)
}

// UserStore resolves referenced users without exposing the rest of the
// account repository.
type UserStore interface {
	GetUserByID(id uint) (*models.User, error)
}

// Notifier is the best-effort notification collaborator; it must never fail
// the calling operation.
type Notifier interface {
	Notify(userID uint, fromUserID *uint, notificationType, title, message string, link *string)
}

type MessageService struct {
	messageStore MessageStore
	userStore    UserStore
	notifier     Notifier
	publisher    EventPublisher
}

func NewMessageService(messageStore MessageStore, userStore UserStore, notifier Notifier, publisher EventPublisher) *MessageService {
	return &MessageService{
		messageStore: messageStore,
		userStore:    userStore,
		notifier:     notifier,
		publisher:    publisher,
	}
}

func (ms *MessageService) ListConversations(userID uint) ([]models.ConversationSummary, error) {
	return ms.messageStore.ListConversations(userID)
}

// Send validates and persists one message. The notification row and the
// published event are best-effort and never block or fail the send.
func (ms *MessageService) Send(senderID uint, body *models.SendMessageRequestBody) (*models.Message, error) {
	content := strings.TrimSpace(body.Content)
	if body.ReceiverID == 0 || content == "" {
		return nil, errs.ErrReceiverAndContentMissing
	}

	receiver, err := ms.userStore.GetUserByID(body.ReceiverID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
		Content:    content,
	}
	if err := ms.messageStore.Create(message); err != nil {
		return nil, err
	}

	link := "/messages"
	ms.notifier.Notify(receiver.ID, &senderID, "message", "New message", content, &link)
	ms.publisher.Publish("message.sent", message)

	return message, nil
}

// FetchThread returns the full two-party thread in ascending creation order
// and marks every message from the peer to the requester as read, so the
// requester's next unread count excludes this peer.
func (ms *MessageService) FetchThread(userID, peerID uint) ([]models.ThreadMessageResponse, error) {
	messages, err := ms.messageStore.GetThread(userID, peerID)
	if err != nil {
		return nil, err
	}
	if err := ms.messageStore.MarkThreadRead(userID, peerID); err != nil {
		return nil, err
	}

	responses := []models.ThreadMessageResponse{}
	for i := range messages {
		responses = append(responses, messages[i].ToThreadMessageResponse())
	}
	return responses, nil
}

func (ms *MessageService) UnreadCount(userID uint) (int64, error) {
	return ms.messageStore.CountUnread(userID)
}
