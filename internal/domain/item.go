package domain

// Item 衣柜单品，归属于一个用户
type Item struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	UserID     string `gorm:"size:36;index" json:"userId"`
	Name       string `gorm:"size:255" json:"name"`
	CategoryID int    `gorm:"index" json:"categoryId"`
	ColorID    int    `json:"colorId"`
	Brand      string `gorm:"size:128" json:"brand"`
	Size       string `gorm:"size:32" json:"size"`
	ImageURL   string `gorm:"size:512" json:"imageUrl"`
	IsActive   bool   `gorm:"default:true" json:"isActive"`

	Audit

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Color    *Color    `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}

func (Item) TableName() string { return "items" }

type ItemRepository interface {
	Create(it *Item) error
	FindByID(id string) (*Item, error)
	ListByUser(userID string) ([]Item, error)
	Update(it *Item) error
	Delete(id string) error
}
