package services

import (
	"strings"

	"hive/internal/models"
	"hive/internal/repositories"
)

const searchBucketLimit = 10

type SearchService struct {
	authRepo  *repositories.AuthenticationRepository
	skillRepo *repositories.SkillRepository
	dealRepo  *repositories.DealRepository
	eventRepo *repositories.EventRepository
}

func NewSearchService(
	authRepo *repositories.AuthenticationRepository,
	skillRepo *repositories.SkillRepository,
	dealRepo *repositories.DealRepository,
	eventRepo *repositories.EventRepository,
) *SearchService {
	return &SearchService{
		authRepo:  authRepo,
		skillRepo: skillRepo,
		dealRepo:  dealRepo,
		eventRepo: eventRepo,
	}
}

// Search runs a case-insensitive substring search per entity bucket. An empty
// query returns empty buckets without touching the store.
func (ss *SearchService) Search(userID uint, query, searchType string, category *string) (*models.SearchResponse, error) {
	response := &models.SearchResponse{
		Users:  []models.UserResponse{},
		Skills: []models.SkillWithOwner{},
		Deals:  []models.DealWithCreator{},
		Events: []models.EventWithCreator{},
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return response, nil
	}

	wants := func(bucket string) bool {
		return searchType == "" || searchType == "all" || searchType == bucket
	}

	if wants("users") {
		users, err := ss.authRepo.SearchUsers(term, userID, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			response.Users = append(response.Users, *user.ToUserResponse())
		}
	}

	if wants("skills") {
		skills, err := ss.skillRepo.Search(term, category, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		response.Skills = skills
	}

	if wants("deals") {
		deals, err := ss.dealRepo.Search(term, category, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		response.Deals = deals
	}

	if wants("events") {
		events, err := ss.eventRepo.Search(term, category, searchBucketLimit)
		if err != nil {
			return nil, err
		}
		response.Events = events
	}

	return response, nil
}
