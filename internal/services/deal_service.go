package services

import (
	"strings"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/repositories"
)

type DealService struct {
	dealRepo  *repositories.DealRepository
	notifier  Notifier
	publisher EventPublisher
}

func NewDealService(dealRepo *repositories.DealRepository, notifier Notifier, publisher EventPublisher) *DealService {
	return &DealService{
		dealRepo:  dealRepo,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (ds *DealService) ListOpen() ([]models.DealWithCreator, error) {
	return ds.dealRepo.ListOpen()
}

func (ds *DealService) ListMine(userID uint) ([]models.Deal, error) {
	return ds.dealRepo.ListByCreator(userID)
}

func (ds *DealService) Create(userID uint, body *models.CreateDealRequestBody) (*models.Deal, error) {
	if strings.TrimSpace(body.Title) == "" {
		return nil, errs.ErrTitleRequired
	}

	deal := &models.Deal{
		CreatorID:     userID,
		Title:         body.Title,
		Description:   body.Description,
		Product:       body.Product,
		OriginalPrice: body.OriginalPrice,
		GroupPrice:    body.GroupPrice,
		MinimumPeople: body.MinimumPeople,
		Deadline:      body.Deadline,
		Category:      body.Category,
	}
	if err := ds.dealRepo.Create(deal); err != nil {
		return nil, err
	}

	ds.publisher.Publish("deal.created", deal)
	return deal, nil
}

// Join adds the caller to the deal; joining twice is a no-op. The creator is
// notified best-effort.
func (ds *DealService) Join(dealID, userID uint) error {
	deal, err := ds.dealRepo.GetByID(dealID)
	if err != nil {
		return err
	}
	if err := ds.dealRepo.Join(deal.ID, userID); err != nil {
		return err
	}

	if deal.CreatorID != userID {
		link := "/deals"
		ds.notifier.Notify(deal.CreatorID, &userID, "deal", "New deal participant",
			"Someone joined your deal: "+deal.Title, &link)
	}
	ds.publisher.Publish("deal.joined", map[string]uint{"deal_id": deal.ID, "user_id": userID})
	return nil
}
