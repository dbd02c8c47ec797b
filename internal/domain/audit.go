package domain

import "time"

// Audit 所有业务表统一的审计字段
type Audit struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `gorm:"size:36" json:"-"`
	UpdatedBy string    `gorm:"size:36" json:"-"`
}
