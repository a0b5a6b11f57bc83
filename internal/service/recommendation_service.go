package service

import (
	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
)

// RecommendationService 基于薄弱领域对内容目录做过滤与截断。
// 输出顺序始终是目录顺序，确定且稳定，不按得分重排。
type RecommendationService struct {
	Catalog *repository.CatalogRepository
}

func NewRecommendationService(catalog *repository.CatalogRepository) *RecommendationService {
	return &RecommendationService{Catalog: catalog}
}

// Recommend 选取规则：
//  1. 条目主题命中薄弱主题，或其领域得分严格低于 CriticalThreshold，
//     两个条件独立判定，满足任一即入选；
//  2. 无任何条目入选时（未测评、或没有领域低于任一阈值），
//     兜底返回目录前 limit 条，目录顺序；
//  3. 截断到 limit 条，保持目录顺序，ID 不重复；
//  4. 领域得分低于 CriticalThreshold 的条目带强烈推荐标记，仅作展示。
//
// limit <= 0 或目录为空返回空列表，不是错误。
func (s *RecommendationService) Recommend(scores model.ScoreResult, weakTopics []string, limit int) []model.Recommendation {
	recommendations := []model.Recommendation{}
	catalog := s.Catalog.Items()
	if limit <= 0 || len(catalog) == 0 {
		return recommendations
	}

	topicSet := make(map[string]bool, len(weakTopics))
	for _, t := range weakTopics {
		topicSet[t] = true
	}

	critical := func(item model.ContentItem) bool {
		score, ok := scores[item.Domain]
		return ok && score < CriticalThreshold
	}

	seen := make(map[string]bool, limit)
	for _, item := range catalog {
		if !topicSet[item.Topic] && !critical(item) {
			continue
		}
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true

		recommendations = append(recommendations, model.Recommendation{
			ContentItem:       item,
			HighlyRecommended: critical(item),
		})
	}

	if len(recommendations) == 0 {
		// 兜底：目录头部，确定性的，绝不随机
		for _, item := range catalog {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			recommendations = append(recommendations, model.Recommendation{
				ContentItem:       item,
				HighlyRecommended: critical(item),
			})
			if len(recommendations) == limit {
				break
			}
		}
		return recommendations
	}

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations
}
