package service

import (
	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

type OutfitPage struct {
	Items    []domain.Outfit `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

type OutfitService struct {
	outfits domain.OutfitRepository
}

func NewOutfitService(outfits domain.OutfitRepository) *OutfitService {
	return &OutfitService{outfits: outfits}
}

func (s *OutfitService) ListMine(userID string, page, pageSize int) (*OutfitPage, error) {
	page, pageSize = normalizePage(page, pageSize, 20)
	items, total, err := s.outfits.ListByUser(userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}
	return &OutfitPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *OutfitService) Get(userID, outfitID string) (*domain.Outfit, error) {
	o, err := s.outfits.FindByID(outfitID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.UserID != userID {
		return nil, ErrNotFound
	}
	return o, nil
}
