package service

import (
	"math"
	"strings"
	"unicode"

	"skillport_backend/internal/model"
	"skillport_backend/internal/repository"
)

const (
	// WeakThreshold 领域得分严格低于该值判定为薄弱
	WeakThreshold = 70
	// CriticalThreshold 更严格的次级阈值，触发强烈推荐标记
	CriticalThreshold = 50
)

// MatchStrategy 关键词匹配策略。默认的子串匹配是兼容性基线，
// 词边界匹配作为显式的独立变体存在，评分结果不同，不可混用。
type MatchStrategy int

const (
	SubstringMatch MatchStrategy = iota
	WordBoundaryMatch
)

// ScoringService 答案评分、领域聚合与薄弱领域分类。
// 全部是纯内存同步计算，无副作用。
type ScoringService struct {
	Bank     *repository.QuestionRepository
	Topics   *repository.TopicRepository
	Strategy MatchStrategy
}

func NewScoringService(bank *repository.QuestionRepository, topics *repository.TopicRepository) *ScoringService {
	return &ScoringService{Bank: bank, Topics: topics, Strategy: SubstringMatch}
}

// ScoreAnswer 对单题回答评分，返回 [0,100]。
// 回答转小写后做字面子串匹配；同一关键词多次出现只计一次，
// 命中出现在无关单词内部也算（这是已接受的简化）。
// 关键词集在题库加载时已保证非空。
func (s *ScoringService) ScoreAnswer(answer string, keywords []string) int {
	if strings.TrimSpace(answer) == "" {
		return 0
	}

	normalized := strings.ToLower(answer)
	matched := 0
	for _, kw := range keywords {
		if s.matches(normalized, strings.ToLower(kw)) {
			matched++
		}
	}

	return roundHalfUp(100 * float64(matched) / float64(len(keywords)))
}

func (s *ScoringService) matches(answer, keyword string) bool {
	switch s.Strategy {
	case WordBoundaryMatch:
		return containsBounded(answer, keyword)
	default:
		return strings.Contains(answer, keyword)
	}
}

// containsBounded 要求命中位置两侧不是字母或数字
func containsBounded(answer, keyword string) bool {
	for from := 0; ; {
		i := strings.Index(answer[from:], keyword)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(keyword)

		leftOK := start == 0 || !isWordByte(answer[start-1])
		rightOK := end == len(answer) || !isWordByte(answer[end])
		if leftOK && rightOK {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

// AggregateDomain 某领域的熟练度：各题得分的算术平均，四舍五入。
// 缺失的回答按空串计0分；未知题目ID不参与迭代，自然被忽略。
// 第二个返回值为 false 表示该领域没有题目，应从结果集中省略。
func (s *ScoringService) AggregateDomain(d model.Domain, answers model.AnswerSet) (int, bool) {
	questions := s.Bank.ByDomain(d)
	if len(questions) == 0 {
		return 0, false
	}

	sum := 0
	for _, q := range questions {
		sum += s.ScoreAnswer(answers[q.ID], q.Keywords)
	}
	return roundHalfUp(float64(sum) / float64(len(questions))), true
}

// ScoreAll 对全部领域聚合，生成一次性的 ScoreResult
func (s *ScoringService) ScoreAll(answers model.AnswerSet) model.ScoreResult {
	scores := make(model.ScoreResult)
	for _, d := range model.Domains() {
		if score, ok := s.AggregateDomain(d, answers); ok {
			scores[d] = score
		}
	}
	return scores
}

// Classify 按阈值划分薄弱领域，并展开为该领域配置的全部主题。
// 主题粒度并未单独测评，这里用领域级阈值做粗粒度代理。
func (s *ScoringService) Classify(scores model.ScoreResult) model.WeakAreas {
	weak := model.WeakAreas{
		Domains: []model.Domain{},
		Topics:  []string{},
	}

	for _, d := range model.Domains() {
		score, ok := scores[d]
		if !ok || score >= WeakThreshold {
			continue
		}
		weak.Domains = append(weak.Domains, d)
		weak.Topics = append(weak.Topics, s.Topics.TopicsFor(d)...)
	}

	return weak
}

// WeakestDomain 得分最低的领域；结果集为空时返回 false
func (s *ScoringService) WeakestDomain(scores model.ScoreResult) (model.Domain, bool) {
	var weakest model.Domain
	lowest := 101
	for _, d := range model.Domains() {
		if score, ok := scores[d]; ok && score < lowest {
			weakest = d
			lowest = score
		}
	}
	return weakest, lowest <= 100
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
