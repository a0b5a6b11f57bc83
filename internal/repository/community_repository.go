package repository

import "skillport_backend/internal/model"

// 社区演示数据，静态只读
var defaultPosts = []model.Post{
	{
		ID: 1,
		Author: model.Author{
			Name:     "Sarah Johnson",
			Username: "sarahj",
			Avatar:   "https://placehold.co/100/8b5cf6/FFFFFF/png?text=SJ",
		},
		Title:     "Help with recursive algorithms?",
		Content:   "I'm struggling to understand how to implement efficient recursive solutions for tree traversal problems. Can anyone explain or point me to good resources?",
		Tags:      []string{"algorithms", "recursion", "trees"},
		Timestamp: "2 hours ago",
		Likes:     12,
		Comments:  5,
	},
	{
		ID: 2,
		Author: model.Author{
			Name:     "Michael Chen",
			Username: "mchen",
			Avatar:   "https://placehold.co/100/4f46e5/FFFFFF/png?text=MC",
		},
		Title:     "Database indexing strategies",
		Content:   "What's the best approach for indexing a database table with frequent reads but occasional updates? I'm trying to optimize my application's performance.",
		Tags:      []string{"databases", "optimization", "indexing"},
		Timestamp: "1 day ago",
		Likes:     24,
		Comments:  8,
	},
	{
		ID: 3,
		Author: model.Author{
			Name:     "Aisha Patel",
			Username: "aishap",
			Avatar:   "https://placehold.co/100/6366f1/FFFFFF/png?text=AP",
		},
		Title:     "Understanding Python decorators",
		Content:   "I'm having trouble grasping how Python decorators work and when I should use them in my code. Can someone provide a simple explanation with examples?",
		Tags:      []string{"python", "decorators", "functions"},
		Timestamp: "3 days ago",
		Likes:     31,
		Comments:  12,
	},
}

var defaultTags = []model.Tag{
	{Name: "python", Count: 234},
	{Name: "algorithms", Count: 186},
	{Name: "databases", Count: 142},
	{Name: "web-dev", Count: 123},
	{Name: "machine-learning", Count: 97},
}

var defaultContributors = []model.Contributor{
	{Name: "Alex Rivera", Username: "alexr", Avatar: "https://placehold.co/100/3730a3/FFFFFF/png?text=AR", Points: 1250},
	{Name: "Priya Shah", Username: "pshah", Avatar: "https://placehold.co/100/4f46e5/FFFFFF/png?text=PS", Points: 1120},
	{Name: "Jordan Lee", Username: "jlee", Avatar: "https://placehold.co/100/6366f1/FFFFFF/png?text=JL", Points: 965},
}

// CommunityRepository 社区信息流数据
type CommunityRepository struct{}

func NewCommunityRepository() *CommunityRepository {
	return &CommunityRepository{}
}

func (r *CommunityRepository) Posts() []model.Post {
	return defaultPosts
}

func (r *CommunityRepository) PopularTags() []model.Tag {
	return defaultTags
}

func (r *CommunityRepository) TopContributors() []model.Contributor {
	return defaultContributors
}
