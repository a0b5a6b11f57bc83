package repository

import (
	"fmt"

	"skillport_backend/internal/model"
)

// defaultCatalog 学习内容目录，静态只读配置。
// 条目顺序即推荐的兜底顺序，调整顺序会改变未测评用户看到的列表。
var defaultCatalog = []model.ContentItem{
	{
		ID:         "vid-bst",
		Domain:     model.DomainDSA,
		Topic:      "Binary Tree Traversal",
		Difficulty: model.DifficultyIntermediate,
		Title:      "Comprehensive Guide to Binary Trees",
		Channel:    "Algorithm Expert",
		Duration:   "31:08",
		Thumbnail:  "https://placehold.co/640x360/3730a3/FFFFFF/png?text=Binary+Trees",
	},
	{
		ID:          "vid-recursion",
		Domain:      model.DomainDSA,
		Topic:       "Dynamic Programming",
		Difficulty:  model.DifficultyIntermediate,
		Recommended: true,
		Title:       "Understanding Recursive Algorithms",
		Channel:     "CS Simplified",
		Duration:    "22:15",
		Thumbnail:   "https://placehold.co/640x360/4f46e5/FFFFFF/png?text=Recursive+Algorithms",
	},
	{
		ID:         "vid-graphs",
		Domain:     model.DomainDSA,
		Topic:      "Graph Algorithms",
		Difficulty: model.DifficultyAdvanced,
		Title:      "Graph Algorithms from BFS to Dijkstra",
		Channel:    "Algorithm Expert",
		Duration:   "27:44",
		Thumbnail:  "https://placehold.co/640x360/8b5cf6/FFFFFF/png?text=Graph+Algorithms",
	},
	{
		ID:          "vid-scheduling",
		Domain:      model.DomainOS,
		Topic:       "Process Scheduling",
		Difficulty:  model.DifficultyBeginner,
		Recommended: true,
		Title:       "CPU Scheduling Algorithms Explained",
		Channel:     "SystemsPro",
		Duration:    "19:32",
		Thumbnail:   "https://placehold.co/640x360/6366f1/FFFFFF/png?text=CPU+Scheduling",
	},
	{
		ID:         "vid-memory",
		Domain:     model.DomainOS,
		Topic:      "Memory Management",
		Difficulty: model.DifficultyIntermediate,
		Title:      "Virtual Memory and Paging Deep Dive",
		Channel:    "SystemsPro",
		Duration:   "24:57",
		Thumbnail:  "https://placehold.co/640x360/4f46e5/FFFFFF/png?text=Virtual+Memory",
	},
	{
		ID:         "vid-deadlocks",
		Domain:     model.DomainOS,
		Topic:      "Deadlocks",
		Difficulty: model.DifficultyIntermediate,
		Title:      "Deadlock Prevention and Avoidance",
		Channel:    "CS Simplified",
		Duration:   "16:20",
		Thumbnail:  "https://placehold.co/640x360/3730a3/FFFFFF/png?text=Deadlocks",
	},
	{
		ID:          "vid-tcpip",
		Domain:      model.DomainCN,
		Topic:       "TCP/IP Stack",
		Difficulty:  model.DifficultyBeginner,
		Recommended: true,
		Title:       "TCP/IP Fundamentals for Developers",
		Channel:     "NetAcademy",
		Duration:    "21:09",
		Thumbnail:   "https://placehold.co/640x360/8b5cf6/FFFFFF/png?text=TCP%2FIP",
	},
	{
		ID:         "vid-netsec",
		Domain:     model.DomainCN,
		Topic:      "Network Security",
		Difficulty: model.DifficultyAdvanced,
		Title:      "Network Security Essentials",
		Channel:    "NetAcademy",
		Duration:   "28:41",
		Thumbnail:  "https://placehold.co/640x360/6366f1/FFFFFF/png?text=Network+Security",
	},
	{
		ID:         "vid-subnetting",
		Domain:     model.DomainCN,
		Topic:      "Subnetting",
		Difficulty: model.DifficultyIntermediate,
		Title:      "Subnetting and CIDR Made Simple",
		Channel:    "DatabasePro",
		Duration:   "15:42",
		Thumbnail:  "https://placehold.co/640x360/6366f1/FFFFFF/png?text=Subnetting",
	},
	{
		ID:         "vid-sorting",
		Domain:     model.DomainDSA,
		Topic:      "Sorting Algorithms",
		Difficulty: model.DifficultyBeginner,
		Title:      "Sorting Algorithms Visualized",
		Channel:    "CS Simplified",
		Duration:   "18:23",
		Thumbnail:  "https://placehold.co/640x360/8b5cf6/FFFFFF/png?text=Sorting",
	},
	{
		ID:         "vid-osi",
		Domain:     model.DomainCN,
		Topic:      "OSI Model",
		Difficulty: model.DifficultyBeginner,
		Title:      "The OSI Model in 20 Minutes",
		Channel:    "NetAcademy",
		Duration:   "20:05",
		Thumbnail:  "https://placehold.co/640x360/4f46e5/FFFFFF/png?text=OSI+Model",
	},
	{
		ID:         "vid-filesystems",
		Domain:     model.DomainOS,
		Topic:      "File Systems",
		Difficulty: model.DifficultyIntermediate,
		Title:      "How File Systems Work",
		Channel:    "SystemsPro",
		Duration:   "23:17",
		Thumbnail:  "https://placehold.co/640x360/3730a3/FFFFFF/png?text=File+Systems",
	},
}

// defaultModules 学习路径页的模块数据
var defaultModules = []model.LearningModule{
	{
		Title:       "Data Structures in Practice",
		Description: "Core data structures and when to reach for each one",
		Domain:      model.DomainDSA,
		Progress:    75,
		Topics: []model.ModuleTopic{
			{Name: "Lists and Stacks", Completed: true, Type: "video"},
			{Name: "Hash Tables", Completed: true, Type: "reading"},
			{Name: "Binary Tree Traversal", Completed: false, Type: "practice"},
			{Name: "Graph Algorithms", Completed: false, Type: "quiz"},
		},
	},
	{
		Title:       "Operating Systems Fundamentals",
		Description: "Processes, memory and the mechanisms behind multitasking",
		Domain:      model.DomainOS,
		Progress:    30,
		Topics: []model.ModuleTopic{
			{Name: "Process Scheduling", Completed: true, Type: "video"},
			{Name: "Memory Management", Completed: false, Type: "reading"},
			{Name: "Deadlocks", Completed: false, Type: "practice"},
			{Name: "File Systems", Completed: false, Type: "quiz"},
		},
	},
	{
		Title:       "Computer Networks",
		Description: "From the OSI model to reliable transport and addressing",
		Domain:      model.DomainCN,
		Progress:    50,
		Topics: []model.ModuleTopic{
			{Name: "OSI Model", Completed: true, Type: "video"},
			{Name: "TCP/IP Stack", Completed: true, Type: "reading"},
			{Name: "Subnetting", Completed: false, Type: "practice"},
			{Name: "Network Security", Completed: false, Type: "quiz"},
		},
	},
}

// CatalogRepository 静态内容目录，启动时校验，之后只读
type CatalogRepository struct {
	items   []model.ContentItem
	modules []model.LearningModule
}

func NewCatalogRepository() (*CatalogRepository, error) {
	return newCatalogRepository(defaultCatalog, defaultModules)
}

func newCatalogRepository(items []model.ContentItem, modules []model.LearningModule) (*CatalogRepository, error) {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog item %q has empty id", item.Title)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("catalog item %s: duplicate id", item.ID)
		}
		seen[item.ID] = true
		if !item.Domain.Valid() {
			return nil, fmt.Errorf("catalog item %s: unknown domain %q", item.ID, item.Domain)
		}
		switch item.Difficulty {
		case model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced:
		default:
			return nil, fmt.Errorf("catalog item %s: unknown difficulty %q", item.ID, item.Difficulty)
		}
	}

	return &CatalogRepository{items: items, modules: modules}, nil
}

// Items 全部内容条目，目录顺序
func (r *CatalogRepository) Items() []model.ContentItem {
	return r.items
}

// Modules 学习路径模块
func (r *CatalogRepository) Modules() []model.LearningModule {
	return r.modules
}
