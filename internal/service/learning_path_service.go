package service

import (
	"context"

	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
)

// LearningPathService 个性化学习路径：静态模块 + 基于会话结果的推荐视频
type LearningPathService struct {
	Catalog        *repository.CatalogRepository
	Results        repository.ResultStore
	Scoring        *ScoringService
	Recommendation *RecommendationService
	DefaultLimit   int
}

func NewLearningPathService(
	catalog *repository.CatalogRepository,
	results repository.ResultStore,
	scoring *ScoringService,
	recommendation *RecommendationService,
	defaultLimit int,
) *LearningPathService {
	return &LearningPathService{
		Catalog:        catalog,
		Results:        results,
		Scoring:        scoring,
		Recommendation: recommendation,
		DefaultLimit:   defaultLimit,
	}
}

type LearningPathResponse struct {
	HasResults      bool                   `json:"hasResults"`
	Modules         []model.LearningModule `json:"modules"`
	Recommendations []model.Recommendation `json:"recommendations"`
}

// GetLearningPath 学习路径视图。未测评时 scores 为空，
// 推荐走目录头部兜底，页面仍然可用。
func (s *LearningPathService) GetLearningPath(ctx context.Context, sessionID string, limit int) (*LearningPathResponse, error) {
	recommendations, hasResults, err := s.recommendFor(ctx, sessionID, limit)
	if err != nil {
		return nil, err
	}

	return &LearningPathResponse{
		HasResults:      hasResults,
		Modules:         s.Catalog.Modules(),
		Recommendations: recommendations,
	}, nil
}

// GetRecommendations 仅返回推荐列表
func (s *LearningPathService) GetRecommendations(ctx context.Context, sessionID string, limit int) ([]model.Recommendation, error) {
	recommendations, _, err := s.recommendFor(ctx, sessionID, limit)
	return recommendations, err
}

func (s *LearningPathService) recommendFor(ctx context.Context, sessionID string, limit int) ([]model.Recommendation, bool, error) {
	if limit <= 0 {
		limit = s.DefaultLimit
	}

	scores, found, err := s.Results.Load(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		scores = model.ScoreResult{}
	}

	weak := s.Scoring.Classify(scores)
	return s.Recommendation.Recommend(scores, weak.Topics, limit), found, nil
}
