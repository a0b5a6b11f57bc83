package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
	"skillport_backend/internal/util"
)

// memoryResultStore 测试用的进程内结果存储
type memoryResultStore struct {
	results map[string]model.ScoreResult
	saveErr error
}

func newMemoryResultStore() *memoryResultStore {
	return &memoryResultStore{results: make(map[string]model.ScoreResult)}
}

func (m *memoryResultStore) Save(_ context.Context, sessionID string, scores model.ScoreResult) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.results[sessionID] = scores
	return nil
}

func (m *memoryResultStore) Load(_ context.Context, sessionID string) (model.ScoreResult, bool, error) {
	scores, ok := m.results[sessionID]
	return scores, ok, nil
}

func newTestAssessment(t *testing.T) (*AssessmentService, *memoryResultStore) {
	t.Helper()
	bank, err := repository.NewQuestionRepository()
	require.NoError(t, err)
	topics := repository.NewTopicRepository()
	store := newMemoryResultStore()
	svc := NewAssessmentService(NewScoringService(bank, topics), bank, topics, store)
	return svc, store
}

// fullAnswers 覆盖全部题目的答卷，未指定的题目填占位文本
func fullAnswers(overrides map[string]string) model.AnswerSet {
	answers := model.AnswerSet{
		"dsa1": "not sure", "dsa2": "not sure", "dsa3": "not sure",
		"os1": "not sure", "os2": "not sure", "os3": "not sure",
		"cn1": "not sure", "cn2": "not sure", "cn3": "not sure",
	}
	for id, a := range overrides {
		answers[id] = a
	}
	return answers
}

func TestListQuestions(t *testing.T) {
	svc, _ := newTestAssessment(t)

	groups := svc.ListQuestions()
	require.Len(t, groups, 3)

	total := 0
	for i, d := range model.Domains() {
		assert.Equal(t, d, groups[i].Domain)
		assert.Equal(t, d.DisplayName(), groups[i].Name)
		assert.NotEmpty(t, groups[i].Questions)
		for _, q := range groups[i].Questions {
			assert.NotEmpty(t, q.ID)
			assert.NotEmpty(t, q.Prompt)
		}
		total += len(groups[i].Questions)
	}
	assert.Equal(t, svc.Bank.Count(), total)
}

func TestSubmitRejectsIncompleteAnswers(t *testing.T) {
	svc, store := newTestAssessment(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		answers model.AnswerSet
	}{
		{name: "no answers at all", answers: model.AnswerSet{}},
		{name: "one question missing", answers: func() model.AnswerSet {
			a := fullAnswers(nil)
			delete(a, "os2")
			return a
		}()},
		{name: "blank answer counts as unanswered", answers: fullAnswers(map[string]string{"cn3": "   "})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(ctx, "sess-1", SubmitAssessmentRequest{Answers: tt.answers})
			assert.ErrorIs(t, err, util.ErrAssessmentIncomplete)
		})
	}
	assert.Empty(t, store.results, "rejected submissions must not persist")
}

func TestSubmitScoresAndPersists(t *testing.T) {
	svc, store := newTestAssessment(t)
	ctx := context.Background()

	answers := fullAnswers(map[string]string{
		"dsa2": "Stacks are LIFO, queues are FIFO; push and pop versus enqueue and dequeue",
	})
	resp, err := svc.Submit(ctx, "sess-1", SubmitAssessmentRequest{Answers: answers})
	require.NoError(t, err)

	require.Len(t, resp.Scores, 3)
	assert.Positive(t, resp.Scores[model.DomainDSA])
	assert.Equal(t, 0, resp.Scores[model.DomainOS])
	assert.Equal(t, 0, resp.Scores[model.DomainCN])

	// 全领域低于阈值，三个领域都薄弱
	assert.Len(t, resp.WeakAreas.Domains, 3)
	assert.Len(t, resp.WeakAreas.Topics, 9)

	stored, ok := store.results["sess-1"]
	require.True(t, ok)
	assert.Equal(t, resp.Scores, stored)
}

func TestSubmitOverwritesPreviousResult(t *testing.T) {
	svc, store := newTestAssessment(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "sess-1", SubmitAssessmentRequest{Answers: fullAnswers(nil)})
	require.NoError(t, err)
	first := store.results["sess-1"]

	second, err := svc.Submit(ctx, "sess-1", SubmitAssessmentRequest{Answers: fullAnswers(map[string]string{
		"os3": "deadlock needs mutual exclusion, hold and wait, circular wait; prevention, avoidance, detection and recovery all apply",
	})})
	require.NoError(t, err)

	assert.NotEqual(t, first, store.results["sess-1"])
	assert.Equal(t, second.Scores, store.results["sess-1"])
}

func TestSubmitPropagatesStoreError(t *testing.T) {
	svc, store := newTestAssessment(t)
	store.saveErr = assert.AnError

	_, err := svc.Submit(context.Background(), "sess-1", SubmitAssessmentRequest{Answers: fullAnswers(nil)})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetResults(t *testing.T) {
	svc, store := newTestAssessment(t)
	ctx := context.Background()

	t.Run("no assessment yet", func(t *testing.T) {
		resp, err := svc.GetResults(ctx, "sess-empty")
		require.NoError(t, err)
		assert.False(t, resp.HasResults)
		assert.Nil(t, resp.Results)
	})

	t.Run("stored result is returned with classification", func(t *testing.T) {
		store.results["sess-1"] = model.ScoreResult{
			model.DomainDSA: 80,
			model.DomainOS:  40,
			model.DomainCN:  65,
		}

		resp, err := svc.GetResults(ctx, "sess-1")
		require.NoError(t, err)
		require.True(t, resp.HasResults)
		require.NotNil(t, resp.Results)
		assert.Equal(t, []model.Domain{model.DomainOS, model.DomainCN}, resp.Results.WeakAreas.Domains)
		assert.True(t, resp.Results.WeakAreas.HasDomain(model.DomainOS))
		assert.False(t, resp.Results.WeakAreas.HasDomain(model.DomainDSA))
		assert.Equal(t, model.DomainOS, resp.Results.WeakestDomain)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		resp, err := svc.GetResults(ctx, "sess-other")
		require.NoError(t, err)
		assert.False(t, resp.HasResults)
	})
}

func TestGetAnalytics(t *testing.T) {
	svc, store := newTestAssessment(t)
	ctx := context.Background()

	t.Run("no assessment yet", func(t *testing.T) {
		resp, err := svc.GetAnalytics(ctx, "sess-empty")
		require.NoError(t, err)
		assert.False(t, resp.HasResults)
		assert.Empty(t, resp.Domains)
	})

	t.Run("summaries split strong and weak", func(t *testing.T) {
		store.results["sess-1"] = model.ScoreResult{
			model.DomainDSA: 85,
			model.DomainOS:  55,
			model.DomainCN:  70,
		}

		resp, err := svc.GetAnalytics(ctx, "sess-1")
		require.NoError(t, err)
		require.True(t, resp.HasResults)
		require.Len(t, resp.Domains, 3)

		assert.Equal(t, 2, resp.StrongAreas)
		assert.Equal(t, 1, resp.WeakAreas)
		assert.Equal(t, model.DomainOS, resp.WeakestDomain)

		for _, d := range resp.Domains {
			if d.Domain == model.DomainOS {
				assert.True(t, d.IsWeak)
				assert.Equal(t, []string{"Process Scheduling", "Memory Management", "Deadlocks"}, d.FocusTopics)
			} else {
				assert.False(t, d.IsWeak)
				assert.Empty(t, d.FocusTopics)
			}
		}
	})
}
