package repo

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

// 套装内单品按穿搭顺序返回
func orderedItems(db *gorm.DB) *gorm.DB { return db.Order("position_order ASC") }

type OutfitRepo struct {
	Base[domain.Outfit]
	db *gorm.DB
}

func NewOutfitRepo(db *gorm.DB) *OutfitRepo {
	return &OutfitRepo{Base: NewBase[domain.Outfit](db), db: db}
}

func (r *OutfitRepo) CreateGenerated(o *domain.Outfit, items []domain.OutfitItem, chat *domain.ChatHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OutfitID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		chat.GeneratedOutfitID = o.ID
		return tx.Create(chat).Error
	})
}

func (r *OutfitRepo) FindByID(id string) (*domain.Outfit, error) {
	var o domain.Outfit
	err := r.db.Preload("Items", orderedItems).First(&o, "id = ? AND is_active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OutfitRepo) ListByUser(userID string, offset, limit int) ([]domain.Outfit, int64, error) {
	tx := r.db.Model(&domain.Outfit{}).Where("user_id = ? AND is_active = ?", userID, true)
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Outfit
	err := tx.Preload("Items", orderedItems).Order("created_at DESC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}
