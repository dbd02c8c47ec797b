package domain

// 参考数据表：只读、迁移时种子写入

type Occasion struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Occasion) TableName() string { return "occasions" }

type Weather struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Weather) TableName() string { return "weathers" }

type Style struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Style) TableName() string { return "styles" }

type Category struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Category) TableName() string { return "categories" }

type Color struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100" json:"name"`
	HexCode string `gorm:"size:16" json:"hexCode"`
}

func (Color) TableName() string { return "colors" }
