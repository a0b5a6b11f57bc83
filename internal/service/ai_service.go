package service

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"skillport_backend/internal/config"
	"skillport_backend/internal/model"
)

// AIService 对接 OpenAI 兼容的 /chat/completions 端点
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatCompletionRequest struct {
	Model    string              `json:"model"`
	Messages []model.ChatMessage `json:"messages"`
	Stream   bool                `json:"stream,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message model.ChatMessage `json:"message"`
		Delta   model.ChatMessage `json:"delta"` // 流式响应
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const assistantPersona = "You are a friendly AI learning assistant for a computer-science study portal. " +
	"Answer questions about data structures, operating systems and computer networks concisely, " +
	"and politely decline topics unrelated to studying."

func (s *AIService) buildMessages(prompt string, context string, history []model.ChatMessage) []model.ChatMessage {
	systemContent := assistantPersona
	if context != "" {
		systemContent = fmt.Sprintf("%s\n\nThe student's latest self-assessment:\n%s\nTailor suggestions to these weak areas.", assistantPersona, context)
	}

	messages := []model.ChatMessage{{Role: "system", Content: systemContent}}
	messages = append(messages, history...)
	messages = append(messages, model.ChatMessage{Role: "user", Content: prompt})
	return messages
}

func (s *AIService) newRequest(body interface{}) (*http.Request, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	return req, nil
}

// Chat 同步对话
func (s *AIService) Chat(prompt string, context string, history []model.ChatMessage) (string, error) {
	req, err := s.newRequest(chatCompletionRequest{
		Model:    s.config.Model,
		Messages: s.buildMessages(prompt, context, history),
	})
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// ChatStream 流式对话，SSE 行协议
func (s *AIService) ChatStream(prompt string, context string, history []model.ChatMessage) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	req, err := s.newRequest(chatCompletionRequest{
		Model:    s.config.Model,
		Messages: s.buildMessages(prompt, context, history),
		Stream:   true,
	})
	if err != nil {
		errChan <- err
		close(out)
		close(errChan)
		return out, errChan
	}

	go func() {
		defer close(out)
		defer close(errChan)

		resp, err := s.client.Do(req)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp chatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				if content := streamResp.Choices[0].Delta.Content; content != "" {
					out <- content
				}
			}
		}
	}()

	return out, errChan
}
