package service

import (
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// AffiliateProduct 第三方市场的一条商品匹配
type AffiliateProduct struct {
	ItemID        string  `json:"itemId"`
	ItemName      string  `json:"itemName"`
	ImageURL      string  `json:"imageUrl"`
	CategoryName  string  `json:"categoryName"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Platform      string  `json:"platform"`
	AffiliateURL  string  `json:"affiliateUrl"`
	Commission    float64 `json:"commissionRate"`
	ShopName      string  `json:"shopName"`
	Rating        float64 `json:"rating"`
	SoldCount     int     `json:"soldCount"`
	IsOnSale      bool    `json:"isOnSale"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
}

// AffiliateService 当前两个市场都是合成目录，占位等待真实接入
type AffiliateService struct {
	shopeeRate float64
	lazadaRate float64
	log        *zap.Logger
}

func NewAffiliateService(shopeeRate, lazadaRate float64, log *zap.Logger) *AffiliateService {
	if shopeeRate <= 0 {
		shopeeRate = 3.0
	}
	if lazadaRate <= 0 {
		lazadaRate = 2.5
	}
	return &AffiliateService{shopeeRate: shopeeRate, lazadaRate: lazadaRate, log: log.Named("affiliate")}
}

// FindBestMatches 每个关键词独立检索两个市场取并集，各选一个最优
func (s *AffiliateService) FindBestMatches(keywords []string, categories []string, maxBudget float64) []AffiliateProduct {
	var perItemBudget float64
	if maxBudget > 0 && len(keywords) > 0 {
		perItemBudget = maxBudget / float64(len(keywords))
	}

	out := make([]AffiliateProduct, 0, len(keywords))
	for i, kw := range keywords {
		category := ""
		if i < len(categories) {
			category = categories[i]
		}
		candidates := append(
			s.searchShopee(kw, category, perItemBudget),
			s.searchLazada(kw, category, perItemBudget)...,
		)
		if best := pickBest(candidates); best != nil {
			out = append(out, *best)
		}
	}
	return out
}

// Score 简单人气分：评分 + 封顶销量占比
func Score(p AffiliateProduct) float64 {
	sold := p.SoldCount
	if sold > 2000 {
		sold = 2000
	}
	return p.Rating + float64(sold)/2000
}

func pickBest(candidates []AffiliateProduct) *AffiliateProduct {
	var best *AffiliateProduct
	for i := range candidates {
		if best == nil || Score(candidates[i]) > Score(*best) {
			best = &candidates[i]
		}
	}
	return best
}

func (s *AffiliateService) searchShopee(keywords, category string, maxPrice float64) []AffiliateProduct {
	list := []AffiliateProduct{
		{
			ItemID:        "sp_001",
			ItemName:      fmt.Sprintf("%s - breathable fabric", keywords),
			ImageURL:      "https://cf.shopee.vn/file/4d1f2f-placeholder.jpg",
			CategoryName:  category,
			Brand:         "LocalBrand A",
			Price:         299000,
			Currency:      "VND",
			Platform:      "Shopee",
			AffiliateURL:  "https://shopee.vn/search?keyword=" + url.QueryEscape(keywords),
			Commission:    s.shopeeRate,
			ShopName:      "Shop Thoi Trang ABC",
			Rating:        4.6,
			SoldCount:     1200,
			IsOnSale:      true,
			OriginalPrice: 349000,
		},
		{
			ItemID:       "sp_002",
			ItemName:     fmt.Sprintf("%s - oversized fit", keywords),
			ImageURL:     "https://cf.shopee.vn/file/7a2b3c-placeholder.jpg",
			CategoryName: category,
			Brand:        "LocalBrand B",
			Price:        259000,
			Currency:     "VND",
			Platform:     "Shopee",
			AffiliateURL: "https://shopee.vn/search?keyword=" + url.QueryEscape(keywords),
			Commission:   s.shopeeRate,
			ShopName:     "Fashion House XYZ",
			Rating:       4.3,
			SoldCount:    860,
		},
	}
	return filterByPrice(list, maxPrice)
}

func (s *AffiliateService) searchLazada(keywords, category string, maxPrice float64) []AffiliateProduct {
	list := []AffiliateProduct{
		{
			ItemID:        "lz_001",
			ItemName:      fmt.Sprintf("%s - premium cotton", keywords),
			ImageURL:      "https://lzd-img-global.slatic.net/g/placeholder.jpg",
			CategoryName:  category,
			Brand:         "Lazada Choice",
			Price:         279000,
			Currency:      "VND",
			Platform:      "Lazada",
			AffiliateURL:  "https://www.lazada.vn/catalog/?q=" + url.QueryEscape(keywords),
			Commission:    s.lazadaRate,
			ShopName:      "LazMall Official",
			Rating:        4.7,
			SoldCount:     2400,
			IsOnSale:      true,
			OriginalPrice: 329000,
		},
	}
	return filterByPrice(list, maxPrice)
}

func filterByPrice(list []AffiliateProduct, maxPrice float64) []AffiliateProduct {
	if maxPrice <= 0 {
		return list
	}
	out := list[:0]
	for _, p := range list {
		if p.Price <= maxPrice {
			out = append(out, p)
		}
	}
	return out
}
