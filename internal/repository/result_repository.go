package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"skillport_backend/internal/model"
)

const resultKey = "assessmentResults"

// ResultStore 会话级测评结果存取。Load 的第二个返回值为 false
// 表示该会话尚未测评，这不是错误。
type ResultStore interface {
	Save(ctx context.Context, sessionID string, scores model.ScoreResult) error
	Load(ctx context.Context, sessionID string) (model.ScoreResult, bool, error)
}

// ResultRepository 基于Redis的会话级结果存储，值为领域码到整数的扁平JSON
type ResultRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewResultRepository(rdb *redis.Client, ttl time.Duration) *ResultRepository {
	return &ResultRepository{rdb: rdb, ttl: ttl}
}

func (r *ResultRepository) key(sessionID string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, resultKey)
}

// Save 覆盖写入，不做合并
func (r *ResultRepository) Save(ctx context.Context, sessionID string, scores model.ScoreResult) error {
	flat := make(map[string]int, len(scores))
	for d, s := range scores {
		flat[string(d)] = s
	}

	data, err := json.Marshal(flat)
	if err != nil {
		return err
	}

	return r.rdb.Set(ctx, r.key(sessionID), data, r.ttl).Err()
}

func (r *ResultRepository) Load(ctx context.Context, sessionID string) (model.ScoreResult, bool, error) {
	data, err := r.rdb.Get(ctx, r.key(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var flat map[string]int
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, false, err
	}

	scores := make(model.ScoreResult, len(flat))
	for name, s := range flat {
		scores[model.Domain(name)] = s
	}
	return scores, true, nil
}
