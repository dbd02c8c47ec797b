package domain

const ChatTypeOutfitRecommendation = "OutfitRecommendation"

// ChatHistory 用户与 AI 的一次完整往返，软删（IsActive=false）
type ChatHistory struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	UserID      string `gorm:"size:36;index" json:"userId"`
	UserMessage string `gorm:"size:1000" json:"userMessage"`
	AIResponse  string `gorm:"column:ai_response" json:"aiResponse"`

	// AI 回复解析出的结构化字段（可空）
	Occasion          string `gorm:"size:100" json:"occasion,omitempty"`
	Weather           string `gorm:"size:100" json:"weather,omitempty"`
	Season            string `gorm:"size:50" json:"season,omitempty"`
	AdditionalPrefs   string `gorm:"size:500" json:"additionalPreferences,omitempty"`
	GeneratedOutfitID string `gorm:"size:36" json:"generatedOutfitId,omitempty"`

	ChatType string `gorm:"size:50;default:OutfitRecommendation" json:"chatType"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	Audit
}

func (ChatHistory) TableName() string { return "chat_history" }

type ChatHistoryRepository interface {
	Create(ch *ChatHistory) error
	// FindActiveOwned 只返回属于 userID 且未软删的记录
	FindActiveOwned(id, userID string) (*ChatHistory, error)
	ListActiveByUser(userID string, limit int) ([]ChatHistory, error)
	Update(ch *ChatHistory) error
	// DeactivateAllByUser 批量软删该用户全部未删记录，返回影响行数
	DeactivateAllByUser(userID string) (int64, error)
}
