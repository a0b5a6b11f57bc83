package service

import (
	"context"

	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
	"skillport_backend/internal/util"
)

// AssessmentService 测评流程编排：出题、判卷、落库、结果与分析视图。
// ScoreResult 在提交时一次性计算，之后不可变，重新提交整体覆盖。
type AssessmentService struct {
	Scoring *ScoringService
	Bank    *repository.QuestionRepository
	Topics  *repository.TopicRepository
	Results repository.ResultStore
}

func NewAssessmentService(
	scoring *ScoringService,
	bank *repository.QuestionRepository,
	topics *repository.TopicRepository,
	results repository.ResultStore,
) *AssessmentService {
	return &AssessmentService{
		Scoring: scoring,
		Bank:    bank,
		Topics:  topics,
		Results: results,
	}
}

type StudentQuestion struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

type DomainQuestions struct {
	Domain    model.Domain      `json:"domain"`
	Name      string            `json:"name"`
	Questions []StudentQuestion `json:"questions"`
}

// ListQuestions 学生端题目列表，按领域分组，关键词不下发
func (s *AssessmentService) ListQuestions() []DomainQuestions {
	out := make([]DomainQuestions, 0, len(model.Domains()))
	for _, d := range model.Domains() {
		questions := s.Bank.ByDomain(d)
		group := DomainQuestions{
			Domain:    d,
			Name:      d.DisplayName(),
			Questions: make([]StudentQuestion, len(questions)),
		}
		for i, q := range questions {
			group.Questions[i] = StudentQuestion{ID: q.ID, Prompt: q.Prompt}
		}
		out = append(out, group)
	}
	return out
}

type SubmitAssessmentRequest struct {
	Answers model.AnswerSet `json:"answers" binding:"required"`
}

type AssessmentResultResponse struct {
	Scores        model.ScoreResult `json:"scores"`
	WeakAreas     model.WeakAreas   `json:"weakAreas"`
	WeakestDomain model.Domain      `json:"weakestDomain,omitempty"`
}

// Submit 判卷并覆盖写入会话存储。
// 未答全的提交直接拒绝，评分核心不处理不完整数据。
func (s *AssessmentService) Submit(ctx context.Context, sessionID string, req SubmitAssessmentRequest) (*AssessmentResultResponse, error) {
	for _, q := range s.Bank.All() {
		if !req.Answers.Answered(q.ID) {
			return nil, util.ErrAssessmentIncomplete
		}
	}

	scores := s.Scoring.ScoreAll(req.Answers)
	if err := s.Results.Save(ctx, sessionID, scores); err != nil {
		return nil, err
	}

	return s.buildResult(scores), nil
}

func (s *AssessmentService) buildResult(scores model.ScoreResult) *AssessmentResultResponse {
	resp := &AssessmentResultResponse{
		Scores:    scores,
		WeakAreas: s.Scoring.Classify(scores),
	}
	if weakest, ok := s.Scoring.WeakestDomain(scores); ok {
		resp.WeakestDomain = weakest
	}
	return resp
}

type StoredResultsResponse struct {
	HasResults bool                      `json:"hasResults"`
	Results    *AssessmentResultResponse `json:"results,omitempty"`
}

// GetResults 读取会话内的既有结果；不存在表示尚未测评，不是错误
func (s *AssessmentService) GetResults(ctx context.Context, sessionID string) (*StoredResultsResponse, error) {
	scores, found, err := s.Results.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &StoredResultsResponse{HasResults: false}, nil
	}
	return &StoredResultsResponse{
		HasResults: true,
		Results:    s.buildResult(scores),
	}, nil
}

type DomainSummary struct {
	Domain      model.Domain `json:"domain"`
	Name        string       `json:"name"`
	Score       int          `json:"score"`
	IsWeak      bool         `json:"isWeak"`
	FocusTopics []string     `json:"focusTopics"`
}

type AnalyticsResponse struct {
	HasResults    bool            `json:"hasResults"`
	Domains       []DomainSummary `json:"domains"`
	StrongAreas   int             `json:"strongAreas"`
	WeakAreas     int             `json:"weakAreas"`
	WeakestDomain model.Domain    `json:"weakestDomain,omitempty"`
}

// GetAnalytics 结果页的图表数据：逐领域摘要与强弱分布
func (s *AssessmentService) GetAnalytics(ctx context.Context, sessionID string) (*AnalyticsResponse, error) {
	scores, found, err := s.Results.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &AnalyticsResponse{HasResults: false, Domains: []DomainSummary{}}, nil
	}

	resp := &AnalyticsResponse{HasResults: true, Domains: []DomainSummary{}}
	for _, d := range model.Domains() {
		score, ok := scores[d]
		if !ok {
			continue
		}

		summary := DomainSummary{
			Domain:      d,
			Name:        d.DisplayName(),
			Score:       score,
			FocusTopics: []string{},
		}
		if score < WeakThreshold {
			summary.IsWeak = true
			summary.FocusTopics = s.Topics.TopicsFor(d)
			resp.WeakAreas++
		} else {
			resp.StrongAreas++
		}
		resp.Domains = append(resp.Domains, summary)
	}

	if weakest, ok := s.Scoring.WeakestDomain(scores); ok {
		resp.WeakestDomain = weakest
	}
	return resp, nil
}
