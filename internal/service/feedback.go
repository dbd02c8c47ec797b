package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/pkg/utils"
)

type FeedbackInput struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"omitempty,email"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Content string `json:"content" binding:"required,max=2000"`
}

type FeedbackPage struct {
	Items    []domain.Feedback `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

type FeedbackService struct {
	feedbacks domain.FeedbackRepository
	log       *zap.Logger
}

func NewFeedbackService(feedbacks domain.FeedbackRepository, log *zap.Logger) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks, log: log.Named("feedback")}
}

// Submit userID 可为空（匿名反馈）
func (s *FeedbackService) Submit(userID string, in FeedbackInput) (*domain.Feedback, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Content) == "" {
		return nil, ErrValidation
	}
	f := &domain.Feedback{
		ID:        utils.NewID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Rating:    in.Rating,
		Content:   strings.TrimSpace(in.Content),
		UserID:    userID,
		IsVisible: true,
	}
	f.CreatedBy = userID
	if err := s.feedbacks.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackService) ListVisible(page, pageSize int) (*FeedbackPage, error) {
	page, pageSize = normalizePage(page, pageSize, 10)
	items, total, err := s.feedbacks.ListVisible((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &FeedbackPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *FeedbackService) ListAll(page, pageSize int) (*FeedbackPage, error) {
	page, pageSize = normalizePage(page, pageSize, 50)
	items, total, err := s.feedbacks.ListAll((page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &FeedbackPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *FeedbackService) SetVisibility(id string, visible bool, adminID string) error {
	f, err := s.feedbacks.FindByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	f.IsVisible = visible
	f.UpdatedBy = adminID
	return s.feedbacks.Update(f)
}

// Delete 反馈是硬删除，审核不通过的数据不留存
func (s *FeedbackService) Delete(id string) error {
	f, err := s.feedbacks.FindByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrNotFound
	}
	return s.feedbacks.Delete(id)
}

func (s *FeedbackService) Statistics() (*domain.FeedbackStats, error) {
	return s.feedbacks.Stats()
}

func normalizePage(page, pageSize, defSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defSize
	}
	return page, pageSize
}
