package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hive/internal/errs"
	"hive/internal/models"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

const eventWithCreatorColumns = "events.id, events.creator_id, events.title, events.description, " +
	"events.location, events.event_date, events.category, events.max_attendees, events.created_at, " +
	"users.first_name, users.last_name, " +
	"COUNT(DISTINCT event_attendees.user_id) AS current_attendees"

// ListUpcoming returns future events soonest first, with attendee counts.
func (er *EventRepository) ListUpcoming() ([]models.EventWithCreator, error) {
	events := []models.EventWithCreator{}
	err := er.db.
		Table("events").
		Select(eventWithCreatorColumns).
		Joins("JOIN users ON users.id = events.creator_id").
		Joins("LEFT JOIN event_attendees ON event_attendees.event_id = events.id").
		Where("events.event_date > ?", time.Now()).
		Group("events.id, users.first_name, users.last_name").
		Order("events.event_date ASC").
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (er *EventRepository) ListByCreator(creatorID uint) ([]models.Event, error) {
	events := []models.Event{}
	err := er.db.
		Where("creator_id = ?", creatorID).
		Order("event_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (er *EventRepository) Create(event *models.Event) error {
	return er.db.Create(event).Error
}

func (er *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	result := er.db.First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrEventNotFound
		}
		return nil, result.Error
	}
	return &event, nil
}

// RSVP registers attendance. Repeating an RSVP is a no-op.
func (er *EventRepository) RSVP(eventID, userID uint) error {
	return er.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.EventAttendee{EventID: eventID, UserID: userID}).Error
}

func (er *EventRepository) Search(term string, category *string, limit int) ([]models.EventWithCreator, error) {
	events := []models.EventWithCreator{}
	pattern := "%" + term + "%"
	query := er.db.
		Table("events").
		Select(eventWithCreatorColumns).
		Joins("JOIN users ON users.id = events.creator_id").
		Joins("LEFT JOIN event_attendees ON event_attendees.event_id = events.id").
		Where("(LOWER(events.title) LIKE ? OR LOWER(events.description) LIKE ?)", pattern, pattern).
		Where("events.event_date > ?", time.Now())
	if category != nil && *category != "" {
		query = query.Where("events.category = ?", *category)
	}
	err := query.
		Group("events.id, users.first_name, users.last_name").
		Limit(limit).
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
