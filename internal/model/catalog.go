package model

// Difficulty 内容难度
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// ContentItem 内容目录条目（视频/模块），按领域、主题、难度打标
// Topic 与薄弱主题按区分大小写的全等匹配，改名会静默破坏推荐
type ContentItem struct {
	ID          string     `json:"id"`
	Domain      Domain     `json:"domain"`
	Topic       string     `json:"topic"`
	Difficulty  Difficulty `json:"difficulty"`
	Recommended bool       `json:"recommended"`
	Title       string     `json:"title"`
	Channel     string     `json:"channel"`
	Duration    string     `json:"duration"`
	Thumbnail   string     `json:"thumbnail"`
}

// Recommendation 推荐输出条目，HighlyRecommended 仅作展示标记，不影响排序
type Recommendation struct {
	ContentItem
	HighlyRecommended bool `json:"highlyRecommended"`
}

// ModuleTopic 学习模块内的单个主题
type ModuleTopic struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Type      string `json:"type"` // video, reading, practice, quiz
}

// LearningModule 学习路径中的模块
type LearningModule struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Domain      Domain        `json:"domain"`
	Progress    int           `json:"progress"`
	Topics      []ModuleTopic `json:"topics"`
}
