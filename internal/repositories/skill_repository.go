package repositories

import (
	"gorm.io/gorm"

	"hive/internal/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{
		db: db,
	}
}

const skillWithOwnerColumns = "skills.id, skills.user_id, skills.title, skills.description, " +
	"skills.category, skills.level, skills.is_offering, skills.created_at, " +
	"users.first_name, users.last_name, users.rating"

func (sr *SkillRepository) ListAll() ([]models.SkillWithOwner, error) {
	skills := []models.SkillWithOwner{}
	err := sr.db.
		Table("skills").
		Select(skillWithOwnerColumns).
		Joins("JOIN users ON users.id = skills.user_id").
		Order("skills.created_at DESC").
		Scan(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (sr *SkillRepository) ListByUser(userID uint) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := sr.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (sr *SkillRepository) Create(skill *models.Skill) error {
	return sr.db.Create(skill).Error
}

func (sr *SkillRepository) Search(term string, category *string, limit int) ([]models.SkillWithOwner, error) {
	skills := []models.SkillWithOwner{}
	pattern := "%" + term + "%"
	query := sr.db.
		Table("skills").
		Select(skillWithOwnerColumns).
		Joins("JOIN users ON users.id = skills.user_id").
		Where("(LOWER(skills.title) LIKE ? OR LOWER(skills.description) LIKE ?)", pattern, pattern)
	if category != nil && *category != "" {
		query = query.Where("skills.category = ?", *category)
	}
	if err := query.Limit(limit).Scan(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}
