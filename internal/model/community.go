package model

// Author 社区帖子作者
type Author struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Post 社区讨论帖
type Post struct {
	ID        int      `json:"id"`
	Author    Author   `json:"author"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Timestamp string   `json:"timestamp"`
	Likes     int      `json:"likes"`
	Comments  int      `json:"comments"`
}

// Tag 热门标签
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Contributor 社区活跃贡献者
type Contributor struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Points   int    `json:"points"`
}
