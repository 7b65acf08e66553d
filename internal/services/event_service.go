package services

import (
	"strings"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/repositories"
)

type EventService struct {
	eventRepo *repositories.EventRepository
	notifier  Notifier
	publisher EventPublisher
}

func NewEventService(eventRepo *repositories.EventRepository, notifier Notifier, publisher EventPublisher) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (es *EventService) ListUpcoming() ([]models.EventWithCreator, error) {
	return es.eventRepo.ListUpcoming()
}

func (es *EventService) ListMine(userID uint) ([]models.Event, error) {
	return es.eventRepo.ListByCreator(userID)
}

func (es *EventService) Create(userID uint, body *models.CreateEventRequestBody) (*models.Event, error) {
	if strings.TrimSpace(body.Title) == "" {
		return nil, errs.ErrTitleRequired
	}

	event := &models.Event{
		CreatorID:    userID,
		Title:        body.Title,
		Description:  body.Description,
		Location:     body.Location,
		EventDate:    body.EventDate,
		Category:     body.Category,
		MaxAttendees: body.MaxAttendees,
	}
	if err := es.eventRepo.Create(event); err != nil {
		return nil, err
	}

	es.publisher.Publish("event.created", event)
	return event, nil
}

// RSVP registers the caller as attending; repeating it is a no-op.
func (es *EventService) RSVP(eventID, userID uint) error {
	event, err := es.eventRepo.GetByID(eventID)
	if err != nil {
		return err
	}
	if err := es.eventRepo.RSVP(event.ID, userID); err != nil {
		return err
	}

	if event.CreatorID != userID {
		link := "/events"
		es.notifier.Notify(event.CreatorID, &userID, "event", "New RSVP",
			"Someone is attending your event: "+event.Title, &link)
	}
	es.publisher.Publish("event.rsvp", map[string]uint{"event_id": event.ID, "user_id": userID})
	return nil
}
