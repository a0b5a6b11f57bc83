package repository

import "skillport_backend/internal/model"

// domainTopics 每个领域的薄弱主题清单，独立于题库维护。
// 主题名与内容目录的 Topic 字段按区分大小写的全等匹配，
// 两边任何一侧改名都会静默断开推荐，改名时必须同步。
var domainTopics = map[model.Domain][]string{
	model.DomainDSA: {
		"Binary Tree Traversal",
		"Dynamic Programming",
		"Graph Algorithms",
	},
	model.DomainOS: {
		"Process Scheduling",
		"Memory Management",
		"Deadlocks",
	},
	model.DomainCN: {
		"TCP/IP Stack",
		"Network Security",
		"Subnetting",
	},
}

// TopicRepository 静态的领域-主题映射
type TopicRepository struct{}

func NewTopicRepository() *TopicRepository {
	return &TopicRepository{}
}

// TopicsFor 某领域的全部主题
func (r *TopicRepository) TopicsFor(d model.Domain) []string {
	return domainTopics[d]
}
