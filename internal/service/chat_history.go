package service

import (
	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

const maxChatHistoryLimit = 100

type ChatHistoryService struct {
	chats domain.ChatHistoryRepository
	log   *zap.Logger
}

func NewChatHistoryService(chats domain.ChatHistoryRepository, log *zap.Logger) *ChatHistoryService {
	return &ChatHistoryService{chats: chats, log: log.Named("chat_history")}
}

func (s *ChatHistoryService) List(userID string, limit int) ([]domain.ChatHistory, error) {
	if limit <= 0 || limit > maxChatHistoryLimit {
		limit = 50
	}
	return s.chats.ListActiveByUser(userID, limit)
}

// Delete 软删，且只能删自己的；他人记录按不存在处理
func (s *ChatHistoryService) Delete(userID, chatID string) error {
	ch, err := s.chats.FindActiveOwned(chatID, userID)
	if err != nil {
		return err
	}
	if ch == nil {
		return ErrNotFound
	}
	ch.IsActive = false
	ch.UpdatedBy = userID
	return s.chats.Update(ch)
}

// ClearAll 单条 UPDATE 批量软删，条数不受分页上限约束
func (s *ChatHistoryService) ClearAll(userID string) (int, error) {
	n, err := s.chats.DeactivateAllByUser(userID)
	if err != nil {
		return 0, err
	}
	s.log.Info("chat history cleared", zap.String("uid", userID), zap.Int64("count", n))
	return int(n), nil
}
