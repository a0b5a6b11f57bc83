package repository

import (
	"fmt"
	"strings"

	"skillport_backend/internal/model"
)

// defaultQuestions 学前测评题库，静态只读配置
var defaultQuestions = []model.Question{
	{
		ID:       "dsa1",
		Domain:   model.DomainDSA,
		Prompt:   "Explain how a binary search tree works and its time complexity for search operations.",
		Keywords: []string{"binary search tree", "o(log n)", "balanced", "left child", "right child", "comparison", "recursion"},
	},
	{
		ID:       "dsa2",
		Domain:   model.DomainDSA,
		Prompt:   "Describe the differences between a stack and a queue data structure, with real-world examples.",
		Keywords: []string{"lifo", "fifo", "push", "pop", "enqueue", "dequeue", "last in first out", "first in first out"},
	},
	{
		ID:       "dsa3",
		Domain:   model.DomainDSA,
		Prompt:   "Explain how hash tables work and discuss collision resolution strategies.",
		Keywords: []string{"hash function", "collision", "chaining", "open addressing", "load factor", "lookup", "o(1)"},
	},
	{
		ID:       "os1",
		Domain:   model.DomainOS,
		Prompt:   "Explain process scheduling algorithms and their impact on system performance.",
		Keywords: []string{"fcfs", "sjf", "round robin", "priority", "scheduling", "cpu utilization", "throughput", "turnaround time"},
	},
	{
		ID:       "os2",
		Domain:   model.DomainOS,
		Prompt:   "Describe virtual memory and its advantages in modern operating systems.",
		Keywords: []string{"paging", "swapping", "page fault", "tlb", "address space", "physical memory", "hard disk", "memory management"},
	},
	{
		ID:       "os3",
		Domain:   model.DomainOS,
		Prompt:   "Explain deadlocks in operating systems and methods to prevent them.",
		Keywords: []string{"deadlock", "mutual exclusion", "hold and wait", "circular wait", "prevention", "avoidance", "detection", "recovery"},
	},
	{
		ID:       "cn1",
		Domain:   model.DomainCN,
		Prompt:   "Explain the OSI model layers and their functions in computer networks.",
		Keywords: []string{"physical", "data link", "network", "transport", "session", "presentation", "application", "protocol"},
	},
	{
		ID:       "cn2",
		Domain:   model.DomainCN,
		Prompt:   "Describe how TCP ensures reliable data transfer over unreliable networks.",
		Keywords: []string{"handshake", "acknowledgment", "sequence number", "flow control", "congestion control", "retransmission", "timeout", "window"},
	},
	{
		ID:       "cn3",
		Domain:   model.DomainCN,
		Prompt:   "Explain IP addressing, subnetting, and the difference between IPv4 and IPv6.",
		Keywords: []string{"subnet mask", "cidr", "private address", "public address", "ipv4", "ipv6", "nat", "routing"},
	},
}

// QuestionRepository 静态题库，进程启动时加载并校验，之后只读
type QuestionRepository struct {
	questions []model.Question
	byID      map[string]model.Question
	byDomain  map[model.Domain][]model.Question
}

func NewQuestionRepository() (*QuestionRepository, error) {
	return newQuestionRepository(defaultQuestions)
}

func newQuestionRepository(questions []model.Question) (*QuestionRepository, error) {
	repo := &QuestionRepository{
		byID:     make(map[string]model.Question),
		byDomain: make(map[model.Domain][]model.Question),
	}

	for _, q := range questions {
		if !q.Domain.Valid() {
			return nil, fmt.Errorf("question %s: unknown domain %q", q.ID, q.Domain)
		}
		if _, dup := repo.byID[q.ID]; dup {
			return nil, fmt.Errorf("question %s: duplicate id", q.ID)
		}

		// 关键词去重（不区分大小写），空关键词集是配置错误，直接失败
		keywords, err := normalizeKeywords(q.ID, q.Keywords)
		if err != nil {
			return nil, err
		}
		q.Keywords = keywords

		repo.questions = append(repo.questions, q)
		repo.byID[q.ID] = q
		repo.byDomain[q.Domain] = append(repo.byDomain[q.Domain], q)
	}

	for _, d := range model.Domains() {
		if len(repo.byDomain[d]) == 0 {
			return nil, fmt.Errorf("domain %s has no questions", d)
		}
	}

	return repo, nil
}

func normalizeKeywords(questionID string, keywords []string) ([]string, error) {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			return nil, fmt.Errorf("question %s: empty keyword", questionID)
		}
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("question %s: keyword set is empty", questionID)
	}
	return out, nil
}

// All 全部题目，题库顺序
func (r *QuestionRepository) All() []model.Question {
	return r.questions
}

// ByDomain 某领域的题目
func (r *QuestionRepository) ByDomain(d model.Domain) []model.Question {
	return r.byDomain[d]
}

// FindByID 按题目ID查找
func (r *QuestionRepository) FindByID(id string) (model.Question, bool) {
	q, ok := r.byID[id]
	return q, ok
}

// Count 题目总数
func (r *QuestionRepository) Count() int {
	return len(r.questions)
}
