package domain

// Feedback 评分 1..5，由 service 层校验；可匿名提交
type Feedback struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Name      string `gorm:"size:255" json:"name"`
	Email     string `gorm:"size:255" json:"email,omitempty"`
	Rating    int    `json:"rating"`
	Content   string `gorm:"size:2000" json:"content"`
	UserID    string `gorm:"size:36;index" json:"userId,omitempty"`
	IsVisible bool   `gorm:"default:true" json:"isVisible"`

	Audit
}

func (Feedback) TableName() string { return "feedbacks" }

// FeedbackStats 按星级聚合后的统计
type FeedbackStats struct {
	Total         int64         `json:"total"`
	Visible       int64         `json:"visible"`
	Hidden        int64         `json:"hidden"`
	AverageRating float64       `json:"averageRating"`
	Distribution  map[int]int64 `json:"ratingDistribution"` // 星级 → 条数
}

type FeedbackRepository interface {
	Create(f *Feedback) error
	FindByID(id string) (*Feedback, error)
	ListVisible(offset, limit int) ([]Feedback, int64, error)
	ListAll(offset, limit int) ([]Feedback, int64, error)
	Update(f *Feedback) error
	Delete(id string) error
	Stats() (*FeedbackStats, error)
}
