package service

import (
	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
)

// CommunityService 社区信息流
type CommunityService struct {
	Repo *repository.CommunityRepository
}

func NewCommunityService(repo *repository.CommunityRepository) *CommunityService {
	return &CommunityService{Repo: repo}
}

type CommunityFeedResponse struct {
	Posts           []model.Post        `json:"posts"`
	PopularTags     []model.Tag         `json:"popularTags"`
	TopContributors []model.Contributor `json:"topContributors"`
}

func (s *CommunityService) GetFeed() *CommunityFeedResponse {
	return &CommunityFeedResponse{
		Posts:           s.Repo.Posts(),
		PopularTags:     s.Repo.PopularTags(),
		TopContributors: s.Repo.TopContributors(),
	}
}
