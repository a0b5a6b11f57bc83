package service

import (
	"context"
	"fmt"
	"strings"

	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
	"skillport_backend/internal/util"
)

// ChatService 聊天编排：把会话内的测评结果注入提示词背景，
// 让助手能回答"我的薄弱环节是什么"一类问题。
type ChatService struct {
	AI      *AIService
	Results repository.ResultStore
	Scoring *ScoringService
}

func NewChatService(ai *AIService, results repository.ResultStore, scoring *ScoringService) *ChatService {
	return &ChatService{AI: ai, Results: results, Scoring: scoring}
}

type ChatRequest struct {
	Prompt  string              `json:"prompt" binding:"required"`
	History []model.ChatMessage `json:"history"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// assessmentContext 将存储的结果渲染为提示词背景；未测评返回空串
func (s *ChatService) assessmentContext(ctx context.Context, sessionID string) string {
	scores, found, err := s.Results.Load(ctx, sessionID)
	if err != nil || !found {
		return ""
	}

	var b strings.Builder
	for _, d := range model.Domains() {
		score, ok := scores[d]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %d/100\n", d.DisplayName(), score)
	}

	weak := s.Scoring.Classify(scores)
	if len(weak.Topics) > 0 {
		fmt.Fprintf(&b, "Weak topics: %s\n", strings.Join(weak.Topics, ", "))
	}
	return b.String()
}

func (s *ChatService) Chat(ctx context.Context, sessionID string, req ChatRequest) (*ChatResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, util.ErrEmptyPrompt
	}

	reply, err := s.AI.Chat(req.Prompt, s.assessmentContext(ctx, sessionID), req.History)
	if err != nil {
		return nil, err
	}
	return &ChatResponse{Reply: reply}, nil
}

func (s *ChatService) ChatStream(ctx context.Context, sessionID string, req ChatRequest) (<-chan string, <-chan error, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, nil, util.ErrEmptyPrompt
	}

	out, errChan := s.AI.ChatStream(req.Prompt, s.assessmentContext(ctx, sessionID), req.History)
	return out, errChan, nil
}
