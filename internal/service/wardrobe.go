package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/pkg/utils"
)

type ItemInput struct {
	Name       string `json:"name" binding:"required,max=255"`
	CategoryID int    `json:"categoryId" binding:"required"`
	ColorID    int    `json:"colorId"`
	Brand      string `json:"brand" binding:"max=128"`
	Size       string `json:"size" binding:"max=32"`
	ImageURL   string `json:"imageUrl" binding:"omitempty,url"`
}

// WardrobeService 衣柜单品，全部操作限定在 owner 范围内
type WardrobeService struct {
	items domain.ItemRepository
	log   *zap.Logger
}

func NewWardrobeService(items domain.ItemRepository, log *zap.Logger) *WardrobeService {
	return &WardrobeService{items: items, log: log.Named("wardrobe")}
}

func (s *WardrobeService) ListMine(userID string) ([]domain.Item, error) {
	return s.items.ListByUser(userID)
}

func (s *WardrobeService) Get(userID, itemID string) (*domain.Item, error) {
	it, err := s.items.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if it == nil || it.UserID != userID {
		return nil, ErrNotFound
	}
	return it, nil
}

func (s *WardrobeService) Add(userID string, in ItemInput) (*domain.Item, error) {
	it := &domain.Item{
		ID:         utils.NewID(),
		UserID:     userID,
		Name:       strings.TrimSpace(in.Name),
		CategoryID: in.CategoryID,
		ColorID:    in.ColorID,
		Brand:      in.Brand,
		Size:       in.Size,
		ImageURL:   in.ImageURL,
		IsActive:   true,
	}
	it.CreatedBy = userID
	if err := s.items.Create(it); err != nil {
		return nil, err
	}
	return s.items.FindByID(it.ID)
}

func (s *WardrobeService) Update(userID, itemID string, in ItemInput) (*domain.Item, error) {
	it, err := s.Get(userID, itemID)
	if err != nil {
		return nil, err
	}
	it.Name = strings.TrimSpace(in.Name)
	it.CategoryID = in.CategoryID
	it.ColorID = in.ColorID
	it.Brand = in.Brand
	it.Size = in.Size
	it.ImageURL = in.ImageURL
	it.UpdatedBy = userID
	if err := s.items.Update(it); err != nil {
		return nil, err
	}
	return s.items.FindByID(itemID)
}

func (s *WardrobeService) Delete(userID, itemID string) error {
	it, err := s.Get(userID, itemID)
	if err != nil {
		return err
	}
	return s.items.Delete(it.ID)
}
