package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
)

func newTestScoring(t *testing.T) *ScoringService {
	t.Helper()
	bank, err := repository.NewQuestionRepository()
	require.NoError(t, err)
	return NewScoringService(bank, repository.NewTopicRepository())
}

func TestScoreAnswer(t *testing.T) {
	s := newTestScoring(t)
	keywords := []string{"lifo", "fifo", "push", "pop", "enqueue", "dequeue", "last in first out", "first in first out"}

	tests := []struct {
		name     string
		answer   string
		keywords []string
		want     int
	}{
		{
			name:     "empty answer scores zero",
			answer:   "",
			keywords: keywords,
			want:     0,
		},
		{
			name:     "whitespace only answer scores zero",
			answer:   "   \t\n  ",
			keywords: keywords,
			want:     0,
		},
		{
			name:     "no keyword hits scores zero",
			answer:   "stacks are useful",
			keywords: keywords,
			want:     0,
		},
		{
			name:     "two of eight keywords",
			answer:   "Stacks are LIFO while queues are FIFO structures",
			keywords: keywords,
			want:     25,
		},
		{
			name:     "matching is case insensitive",
			answer:   "PUSH and POP, ENQUEUE and DEQUEUE",
			keywords: keywords,
			want:     50,
		},
		{
			name:     "repeated keyword counts once",
			answer:   "push push push push",
			keywords: keywords,
			want:     13,
		},
		{
			name:     "substring inside unrelated word still counts",
			answer:   "pushing items onto it",
			keywords: keywords,
			want:     13,
		},
		{
			name:     "full score requires every keyword",
			answer:   "lifo fifo push pop enqueue dequeue last in first out first in first out",
			keywords: keywords,
			want:     100,
		},
		{
			name:     "one of three rounds to 33",
			answer:   "collision",
			keywords: []string{"collision", "chaining", "hashing"},
			want:     33,
		},
		{
			name:     "two of three rounds half up to 67",
			answer:   "collision and chaining",
			keywords: []string{"collision", "chaining", "hashing"},
			want:     67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ScoreAnswer(tt.answer, tt.keywords))
		})
	}
}

func TestScoreAnswerRange(t *testing.T) {
	s := newTestScoring(t)
	answers := []string{
		"",
		"nothing relevant at all",
		"lifo",
		"lifo fifo push pop enqueue dequeue last in first out first in first out and more text",
	}
	for _, q := range s.Bank.All() {
		for _, a := range answers {
			score := s.ScoreAnswer(a, q.Keywords)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestWordBoundaryMatch(t *testing.T) {
	s := newTestScoring(t)
	s.Strategy = WordBoundaryMatch

	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{
			name:   "standalone word matches",
			answer: "you push items onto a stack",
			want:   50,
		},
		{
			name:   "embedded substring does not match",
			answer: "pushing items onto a stack",
			want:   0,
		},
		{
			name:   "punctuation is a valid boundary",
			answer: "push, then pop.",
			want:   100,
		},
	}

	keywords := []string{"push", "pop"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ScoreAnswer(tt.answer, keywords))
		})
	}
}

func TestAggregateDomain(t *testing.T) {
	s := newTestScoring(t)

	t.Run("missing answers count as zero", func(t *testing.T) {
		score, ok := s.AggregateDomain(model.DomainDSA, model.AnswerSet{})
		require.True(t, ok)
		assert.Equal(t, 0, score)
	})

	t.Run("unknown answer ids are ignored", func(t *testing.T) {
		answers := model.AnswerSet{"bogus": "lifo fifo push pop", "dsa99": "collision"}
		score, ok := s.AggregateDomain(model.DomainDSA, answers)
		require.True(t, ok)
		assert.Equal(t, 0, score)
	})

	t.Run("mean of per question scores rounds half up", func(t *testing.T) {
		// dsa1: 0/7, dsa2: 2/8 -> 25, dsa3: 2/7 -> 29; mean 18 -> 18
		answers := model.AnswerSet{
			"dsa1": "no idea",
			"dsa2": "lifo and fifo",
			"dsa3": "collision resolved by chaining",
		}
		score, ok := s.AggregateDomain(model.DomainDSA, answers)
		require.True(t, ok)
		assert.Equal(t, 18, score)
	})

	t.Run("aggregation is idempotent", func(t *testing.T) {
		answers := model.AnswerSet{"dsa2": "push and pop, enqueue and dequeue"}
		first, ok := s.AggregateDomain(model.DomainDSA, answers)
		require.True(t, ok)
		second, ok := s.AggregateDomain(model.DomainDSA, answers)
		require.True(t, ok)
		assert.Equal(t, first, second)
	})
}

func TestScoreAllCoversEveryDomain(t *testing.T) {
	s := newTestScoring(t)
	scores := s.ScoreAll(model.AnswerSet{})
	require.Len(t, scores, len(model.Domains()))
	for _, d := range model.Domains() {
		assert.Contains(t, scores, d)
	}
}

func TestClassify(t *testing.T) {
	s := newTestScoring(t)

	tests := []struct {
		name        string
		scores      model.ScoreResult
		wantDomains []model.Domain
		wantTopics  []string
	}{
		{
			name:        "empty result yields no weak areas",
			scores:      model.ScoreResult{},
			wantDomains: []model.Domain{},
			wantTopics:  []string{},
		},
		{
			name:        "all domains at threshold or above",
			scores:      model.ScoreResult{model.DomainDSA: 70, model.DomainOS: 85, model.DomainCN: 100},
			wantDomains: []model.Domain{},
			wantTopics:  []string{},
		},
		{
			name:   "score just below threshold is weak",
			scores: model.ScoreResult{model.DomainDSA: 80, model.DomainOS: 69, model.DomainCN: 90},
			wantDomains: []model.Domain{
				model.DomainOS,
			},
			wantTopics: []string{"Process Scheduling", "Memory Management", "Deadlocks"},
		},
		{
			name:   "score of fifty is weak",
			scores: model.ScoreResult{model.DomainDSA: 72, model.DomainOS: 50, model.DomainCN: 75},
			wantDomains: []model.Domain{
				model.DomainOS,
			},
			wantTopics: []string{"Process Scheduling", "Memory Management", "Deadlocks"},
		},
		{
			name:   "multiple weak domains keep declaration order",
			scores: model.ScoreResult{model.DomainDSA: 10, model.DomainOS: 95, model.DomainCN: 0},
			wantDomains: []model.Domain{
				model.DomainDSA,
				model.DomainCN,
			},
			wantTopics: []string{
				"Binary Tree Traversal", "Dynamic Programming", "Graph Algorithms",
				"TCP/IP Stack", "Network Security", "Subnetting",
			},
		},
		{
			name:        "domains absent from the result are never weak",
			scores:      model.ScoreResult{model.DomainDSA: 90},
			wantDomains: []model.Domain{},
			wantTopics:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weak := s.Classify(tt.scores)
			assert.Equal(t, tt.wantDomains, weak.Domains)
			assert.Equal(t, tt.wantTopics, weak.Topics)
		})
	}
}

func TestWeakestDomain(t *testing.T) {
	s := newTestScoring(t)

	t.Run("empty result has no weakest domain", func(t *testing.T) {
		_, ok := s.WeakestDomain(model.ScoreResult{})
		assert.False(t, ok)
	})

	t.Run("lowest score wins", func(t *testing.T) {
		d, ok := s.WeakestDomain(model.ScoreResult{
			model.DomainDSA: 80,
			model.DomainOS:  40,
			model.DomainCN:  60,
		})
		require.True(t, ok)
		assert.Equal(t, model.DomainOS, d)
	})
}
