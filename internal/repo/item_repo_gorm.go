package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

type ItemRepo struct {
	Base[domain.Item]
	db *gorm.DB
}

func NewItemRepo(db *gorm.DB) *ItemRepo {
	return &ItemRepo{Base: NewBase[domain.Item](db), db: db}
}

func (r *ItemRepo) Create(it *domain.Item) error { return r.Base.Create(it) }

func (r *ItemRepo) FindByID(id string) (*domain.Item, error) {
	var it domain.Item
	err := r.db.Preload("Category").Preload("Color").
		First(&it, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepo) ListByUser(userID string) ([]domain.Item, error) {
	var items []domain.Item
	err := r.db.Preload("Category").Preload("Color").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *ItemRepo) Update(it *domain.Item) error { return r.Base.Update(it) }

// Delete 软删，查询侧统一按 is_active 过滤
func (r *ItemRepo) Delete(id string) error {
	return r.db.Model(&domain.Item{}).Where("id = ?", id).Update("is_active", false).Error
}
