package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
)

func newTestLearningPath(t *testing.T) (*LearningPathService, *memoryResultStore) {
	t.Helper()
	bank, err := repository.NewQuestionRepository()
	require.NoError(t, err)
	catalog, err := repository.NewCatalogRepository()
	require.NoError(t, err)

	store := newMemoryResultStore()
	scoring := NewScoringService(bank, repository.NewTopicRepository())
	svc := NewLearningPathService(catalog, store, scoring, NewRecommendationService(catalog), 6)
	return svc, store
}

func TestGetLearningPathWithoutAssessment(t *testing.T) {
	svc, _ := newTestLearningPath(t)

	resp, err := svc.GetLearningPath(context.Background(), "sess-empty", 0)
	require.NoError(t, err)

	assert.False(t, resp.HasResults)
	assert.Len(t, resp.Modules, 3)
	// 未测评时兜底返回目录头部，条数取默认上限
	require.Len(t, resp.Recommendations, 6)
	catalog := svc.Catalog.Items()
	for i, r := range resp.Recommendations {
		assert.Equal(t, catalog[i].ID, r.ID)
		assert.False(t, r.HighlyRecommended)
	}
}

func TestGetLearningPathWithAssessment(t *testing.T) {
	svc, store := newTestLearningPath(t)
	store.results["sess-1"] = model.ScoreResult{
		model.DomainDSA: 90,
		model.DomainOS:  45,
		model.DomainCN:  80,
	}

	resp, err := svc.GetLearningPath(context.Background(), "sess-1", 10)
	require.NoError(t, err)

	assert.True(t, resp.HasResults)
	require.NotEmpty(t, resp.Recommendations)
	for _, r := range resp.Recommendations {
		assert.Equal(t, model.DomainOS, r.Domain)
		assert.True(t, r.HighlyRecommended)
	}
}

func TestGetRecommendationsUsesExplicitLimit(t *testing.T) {
	svc, store := newTestLearningPath(t)
	store.results["sess-1"] = model.ScoreResult{
		model.DomainDSA: 60,
		model.DomainOS:  60,
		model.DomainCN:  60,
	}

	recs, err := svc.GetRecommendations(context.Background(), "sess-1", 2)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
