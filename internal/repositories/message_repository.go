package repositories

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"hive/internal/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

func (mr *MessageRepository) Create(message *models.Message) error {
	return mr.db.Create(message).Error
}

// ListConversations derives the per-peer summaries from the flat message
// table: one entry per distinct peer, carrying the newest message between the
// pair and whether any message from that peer is still unread. Ordered by
// last-message time descending, peer id as tie-break.
func (mr *MessageRepository) ListConversations(userID uint) ([]models.ConversationSummary, error) {
	var messages []models.Message
	if err := mr.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	summaries := []models.ConversationSummary{}
	byPeer := make(map[uint]int)
	for _, message := range messages {
		peerID := message.SenderID
		if peerID == userID {
			peerID = message.ReceiverID
		}
		index, seen := byPeer[peerID]
		if !seen {
			// Messages arrive newest first, so the first one per peer is
			// the conversation's representative.
			summaries = append(summaries, models.ConversationSummary{
				OtherUserID:     peerID,
				LastMessage:     message.Content,
				LastMessageTime: message.CreatedAt,
			})
			index = len(summaries) - 1
			byPeer[peerID] = index
		}
		if message.ReceiverID == userID && message.ReadAt == nil {
			summaries[index].HasUnread = true
		}
	}

	if len(summaries) == 0 {
		return summaries, nil
	}

	peerIDs := make([]uint, 0, len(byPeer))
	for peerID := range byPeer {
		peerIDs = append(peerIDs, peerID)
	}
	var peers []models.User
	if err := mr.db.Where("id IN ?", peerIDs).Find(&peers).Error; err != nil {
		return nil, err
	}
	for _, peer := range peers {
		if index, ok := byPeer[peer.ID]; ok {
			summaries[index].FirstName = peer.FirstName
			summaries[index].LastName = peer.LastName
			summaries[index].ProfilePicture = peer.ProfilePicture
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].LastMessageTime.Equal(summaries[j].LastMessageTime) {
			return summaries[i].OtherUserID < summaries[j].OtherUserID
		}
		return summaries[i].LastMessageTime.After(summaries[j].LastMessageTime)
	})

	return summaries, nil
}

// GetThread returns every message exchanged between the two users in
// ascending creation order, with both participants preloaded.
func (mr *MessageRepository) GetThread(userID, peerID uint) ([]models.Message, error) {
	var messages []models.Message
	err := mr.db.
		Preload("Sender").
		Preload("Receiver").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkThreadRead stamps every unread message from peer to user in a single
// conditional UPDATE. Already-read messages keep their original timestamp,
// so repeated calls are no-ops.
func (mr *MessageRepository) MarkThreadRead(userID, peerID uint) error {
	return mr.db.
		Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND read_at IS NULL", userID, peerID).
		Update("read_at", time.Now()).Error
}

func (mr *MessageRepository) CountUnread(userID uint) (int64, error) {
	var count int64
	err := mr.db.
		Model(&models.Message{}).
		Where("receiver_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
