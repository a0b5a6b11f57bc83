package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillport_backend/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	items := repo.Items()
	assert.Len(t, items, 12)

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate item %s", item.ID)
		seen[item.ID] = true
		assert.True(t, item.Domain.Valid())
		assert.NotEmpty(t, item.Topic)
		assert.NotEmpty(t, item.Title)
	}

	assert.Len(t, repo.Modules(), len(model.Domains()))
}

// 薄弱主题清单与目录条目按主题名精确匹配，任何一侧改名都会断开推荐
func TestCatalogCoversEveryWeakTopic(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)
	topics := NewTopicRepository()

	byTopic := make(map[string]bool)
	for _, item := range repo.Items() {
		byTopic[item.Topic] = true
	}

	for _, d := range model.Domains() {
		for _, topic := range topics.TopicsFor(d) {
			assert.True(t, byTopic[topic], "no catalog item for weak topic %q", topic)
		}
	}
}

func TestCatalogValidation(t *testing.T) {
	valid := func() []model.ContentItem {
		return []model.ContentItem{
			{ID: "v1", Domain: model.DomainDSA, Topic: "Sorting", Difficulty: model.DifficultyBeginner, Title: "t"},
			{ID: "v2", Domain: model.DomainOS, Topic: "Paging", Difficulty: model.DifficultyAdvanced, Title: "t"},
		}
	}

	tests := []struct {
		name    string
		mutate  func([]model.ContentItem) []model.ContentItem
		wantErr string
	}{
		{
			name: "empty id",
			mutate: func(items []model.ContentItem) []model.ContentItem {
				items[0].ID = ""
				return items
			},
			wantErr: "empty id",
		},
		{
			name: "duplicate id",
			mutate: func(items []model.ContentItem) []model.ContentItem {
				items[1].ID = "v1"
				return items
			},
			wantErr: "duplicate id",
		},
		{
			name: "unknown domain",
			mutate: func(items []model.ContentItem) []model.ContentItem {
				items[1].Domain = "astrology"
				return items
			},
			wantErr: "unknown domain",
		},
		{
			name: "unknown difficulty",
			mutate: func(items []model.ContentItem) []model.ContentItem {
				items[0].Difficulty = "impossible"
				return items
			},
			wantErr: "unknown difficulty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newCatalogRepository(tt.mutate(valid()), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
