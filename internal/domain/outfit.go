package domain

// Outfit 一组有序单品，可由用户手工创建或由 AI 生成
type Outfit struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	UserID        string `gorm:"size:36;index" json:"userId"`
	Name          string `gorm:"size:255" json:"name"`
	Description   string `gorm:"size:1000" json:"description"`
	Occasion      string `gorm:"size:100" json:"occasion"`
	Weather       string `gorm:"size:100" json:"weather"`
	Season        string `gorm:"size:50" json:"season"`
	IsAIGenerated bool   `gorm:"column:is_ai_generated;default:false" json:"isAiGenerated"`
	IsActive      bool   `gorm:"default:true" json:"isActive"`

	Audit

	Items []OutfitItem `gorm:"foreignKey:OutfitID" json:"items,omitempty"`
}

func (Outfit) TableName() string { return "outfits" }

// OutfitItem 连接行，PositionOrder 从 1 开始
type OutfitItem struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	OutfitID      string `gorm:"size:36;index" json:"outfitId"`
	ItemID        string `gorm:"size:36;index" json:"itemId"`
	ItemType      string `gorm:"size:100" json:"itemType"`
	PositionOrder int    `json:"positionOrder"`
}

func (OutfitItem) TableName() string { return "outfit_items" }

type OutfitRepository interface {
	// CreateGenerated 一个事务内写入 outfit、全部 outfit_items 和对应聊天记录，
	// 任何一步失败整体回滚
	CreateGenerated(o *Outfit, items []OutfitItem, chat *ChatHistory) error
	FindByID(id string) (*Outfit, error)
	ListByUser(userID string, offset, limit int) ([]Outfit, int64, error)
}
