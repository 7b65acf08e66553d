package services

import (
	"strings"

	"hive/internal/errs"
	"hive/internal/models"
	"hive/internal/repositories"
)

type SkillService struct {
	skillRepo *repositories.SkillRepository
	publisher EventPublisher
}

func NewSkillService(skillRepo *repositories.SkillRepository, publisher EventPublisher) *SkillService {
	return &SkillService{
		skillRepo: skillRepo,
		publisher: publisher,
	}
}

func (ss *SkillService) ListAll() ([]models.SkillWithOwner, error) {
	return ss.skillRepo.ListAll()
}

func (ss *SkillService) ListMine(userID uint) ([]models.Skill, error) {
	return ss.skillRepo.ListByUser(userID)
}

func (ss *SkillService) Create(userID uint, body *models.CreateSkillRequestBody) (*models.Skill, error) {
	if strings.TrimSpace(body.Title) == "" {
		return nil, errs.ErrTitleRequired
	}
	if strings.TrimSpace(body.Category) == "" {
		return nil, errs.ErrCategoryRequired
	}

	skill := &models.Skill{
		UserID:      userID,
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Level:       body.Level,
		IsOffering:  body.IsOffering,
	}
	if err := ss.skillRepo.Create(skill); err != nil {
		return nil, err
	}

	ss.publisher.Publish("skill.created", skill)
	return skill, nil
}
