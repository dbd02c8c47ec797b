package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 注册即创建，只做软禁用（IsActive=false），从不物理删除
type User struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	Email        string `gorm:"uniqueIndex;size:191" json:"email"`
	FullName     string `gorm:"size:128" json:"fullName"`
	PasswordHash string `gorm:"size:191" json:"-"`
	Role         string `gorm:"size:16;default:user" json:"role"` // "user"/"admin"

	// 个人档案，用于 AI 推荐的个性化
	Gender           string     `gorm:"size:16" json:"gender"`
	BirthDate        *time.Time `json:"birthDate,omitempty"`
	BodyType         string     `gorm:"size:64" json:"bodyType"`
	SkinTone         string     `gorm:"size:64" json:"skinTone"`
	HeightCm         int        `json:"heightCm"`
	WeightKg         int        `json:"weightKg"`
	StylePreferences string     `gorm:"size:255" json:"stylePreferences"`
	SizePreferences  string     `gorm:"size:64" json:"sizePreferences"`

	IsPremium bool `gorm:"default:false" json:"isPremium"`
	IsActive  bool `gorm:"default:true" json:"isActive"`

	Audit
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	List(q string, offset, limit int) ([]User, int64, error)
	Update(u *User) error
	Deactivate(id string) error
}
