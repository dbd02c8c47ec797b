package repo

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

type UserRepo struct {
	Base[domain.User]
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{Base: NewBase[domain.User](db), db: db}
}

func (r *UserRepo) Create(u *domain.User) error { return r.Base.Create(u) }

func (r *UserRepo) FindByID(id string) (*domain.User, error) { return r.GetByID(id) }

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	return r.GetOne("email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepo) List(q string, offset, limit int) ([]domain.User, int64, error) {
	if s := strings.TrimSpace(q); s != "" {
		like := "%" + s + "%"
		return r.Base.List("created_at DESC", offset, limit, "email LIKE ? OR full_name LIKE ?", like, like)
	}
	return r.Base.List("created_at DESC", offset, limit, nil)
}

func (r *UserRepo) Update(u *domain.User) error { return r.Base.Update(u) }

// Deactivate 软禁用，封号走这里而不是物理删除
func (r *UserRepo) Deactivate(id string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).Update("is_active", false).Error
}
