package repo

import (
	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

type ChatHistoryRepo struct {
	Base[domain.ChatHistory]
	db *gorm.DB
}

func NewChatHistoryRepo(db *gorm.DB) *ChatHistoryRepo {
	return &ChatHistoryRepo{Base: NewBase[domain.ChatHistory](db), db: db}
}

func (r *ChatHistoryRepo) Create(ch *domain.ChatHistory) error { return r.Base.Create(ch) }

func (r *ChatHistoryRepo) FindActiveOwned(id, userID string) (*domain.ChatHistory, error) {
	return r.GetOne("id = ? AND user_id = ? AND is_active = ?", id, userID, true)
}

func (r *ChatHistoryRepo) ListActiveByUser(userID string, limit int) ([]domain.ChatHistory, error) {
	out, _, err := r.Base.List("created_at DESC", 0, limit, "user_id = ? AND is_active = ?", userID, true)
	return out, err
}

func (r *ChatHistoryRepo) Update(ch *domain.ChatHistory) error { return r.Base.Update(ch) }

func (r *ChatHistoryRepo) DeactivateAllByUser(userID string) (int64, error) {
	tx := r.db.Model(&domain.ChatHistory{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]any{"is_active": false, "updated_by": userID})
	return tx.RowsAffected, tx.Error
}
