package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hive/internal/errs"
	"hive/internal/models"
)

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{
		db: db,
	}
}

const dealWithCreatorColumns = "deals.id, deals.creator_id, deals.title, deals.description, " +
	"deals.product, deals.original_price, deals.group_price, deals.minimum_people, " +
	"deals.deadline, deals.category, deals.created_at, " +
	"users.first_name, users.last_name, " +
	"COUNT(DISTINCT deal_participants.user_id) AS current_people"

// ListOpen returns deals whose deadline has not passed, each with its
// creator's name and the current participant count.
func (dr *DealRepository) ListOpen() ([]models.DealWithCreator, error) {
	deals := []models.DealWithCreator{}
	err := dr.db.
		Table("deals").
		Select(dealWithCreatorColumns).
		Joins("JOIN users ON users.id = deals.creator_id").
		Joins("LEFT JOIN deal_participants ON deal_participants.deal_id = deals.id").
		Where("deals.deadline > ?", time.Now()).
		Group("deals.id, users.first_name, users.last_name").
		Order("deals.created_at DESC").
		Scan(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

func (dr *DealRepository) ListByCreator(creatorID uint) ([]models.Deal, error) {
	deals := []models.Deal{}
	err := dr.db.
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}

func (dr *DealRepository) Create(deal *models.Deal) error {
	return dr.db.Create(deal).Error
}

func (dr *DealRepository) GetByID(id uint) (*models.Deal, error) {
	var deal models.Deal
	result := dr.db.First(&deal, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDealNotFound
		}
		return nil, result.Error
	}
	return &deal, nil
}

// Join adds the user to the deal. Joining twice is a no-op.
func (dr *DealRepository) Join(dealID, userID uint) error {
	return dr.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.DealParticipant{DealID: dealID, UserID: userID}).Error
}

func (dr *DealRepository) Search(term string, category *string, limit int) ([]models.DealWithCreator, error) {
	deals := []models.DealWithCreator{}
	pattern := "%" + term + "%"
	query := dr.db.
		Table("deals").
		Select(dealWithCreatorColumns).
		Joins("JOIN users ON users.id = deals.creator_id").
		Joins("LEFT JOIN deal_participants ON deal_participants.deal_id = deals.id").
		Where("(LOWER(deals.title) LIKE ? OR LOWER(deals.description) LIKE ?)", pattern, pattern).
		Where("deals.deadline > ?", time.Now())
	if category != nil && *category != "" {
		query = query.Where("deals.category = ?", *category)
	}
	err := query.
		Group("deals.id, users.first_name, users.last_name").
		Limit(limit).
		Scan(&deals).Error
	if err != nil {
		return nil, err
	}
	return deals, nil
}
