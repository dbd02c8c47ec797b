package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
	"github.com/Thaihung204/GENTRY-BE/pkg/llm"
	"github.com/Thaihung204/GENTRY-BE/pkg/utils"
)

const (
	fallbackItemCount  = 3
	placeholderOutfit  = "https://via.placeholder.com/400x500/cccccc/666666?text=Outfit"
	stylistSystemRole  = "You are a professional fashion stylist. You build complete outfits using only the garments available in the customer's wardrobe."
	msgEmptyWardrobe   = "Your wardrobe is empty. Add some items before asking for outfit recommendations."
	msgDegradedOutfit  = "The stylist could not fully interpret the AI suggestion, so a starter outfit was picked from your wardrobe instead."
	msgOutfitGenerated = "Outfit generated from your wardrobe."
)

type ChatInput struct {
	UserMessage     string `json:"userMessage" binding:"required,max=1000"`
	Occasion        string `json:"occasion" binding:"max=100"`
	Weather         string `json:"weatherCondition" binding:"max=100"`
	Season          string `json:"season" binding:"max=50"`
	AdditionalPrefs string `json:"additionalPreferences" binding:"max=500"`
}

type SelectedItem struct {
	ItemID       string `json:"itemId"`
	ItemName     string `json:"itemName"`
	CategoryName string `json:"categoryName"`
	ImageURL     string `json:"imageUrl"`
	Reason       string `json:"reason,omitempty"`
}

// ChatResult Success=false 是业务拒绝（如空衣柜）；Degraded=true 明确标注
// AI 回复不可用、选择是随机兜底的情况，绝不冒充正常结果。
type ChatResult struct {
	Success              bool               `json:"success"`
	Degraded             bool               `json:"degraded"`
	Message              string             `json:"message"`
	GeneratedOutfitID    string             `json:"generatedOutfitId,omitempty"`
	ImageURL             string             `json:"imageUrl,omitempty"`
	Items                []SelectedItem     `json:"outfitItems,omitempty"`
	RecommendationReason string             `json:"recommendationReason,omitempty"`
	StylingTips          string             `json:"stylingTips,omitempty"`
	AffiliateProducts    []AffiliateProduct `json:"affiliateProducts,omitempty"`
}

// StylistService 串行管线：衣柜 → 画像 → prompt → 一次 AI 调用 → 解析 → 落库
type StylistService struct {
	items      domain.ItemRepository
	users      domain.UserRepository
	outfits    domain.OutfitRepository
	completer  llm.Completer
	affiliates *AffiliateService
	log        *zap.Logger
	now        func() time.Time
}

func NewStylistService(
	items domain.ItemRepository,
	users domain.UserRepository,
	outfits domain.OutfitRepository,
	completer llm.Completer,
	affiliates *AffiliateService,
	log *zap.Logger,
) *StylistService {
	return &StylistService{
		items:      items,
		users:      users,
		outfits:    outfits,
		completer:  completer,
		affiliates: affiliates,
		log:        log.Named("stylist"),
		now:        time.Now,
	}
}

func (s *StylistService) Chat(ctx context.Context, userID string, in ChatInput) (*ChatResult, error) {
	wardrobe, err := s.items.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	// 空衣柜是业务拒绝，不调 AI、不写任何行
	if len(wardrobe) == 0 {
		stylistChats.WithLabelValues("refused").Inc()
		return &ChatResult{Success: false, Message: msgEmptyWardrobe}, nil
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	prompt := buildStylistPrompt(user, in, wardrobe)

	// 单次调用，不重试；失败原样上抛（transport 映射 502）
	raw, err := s.completer.Complete(ctx, stylistSystemRole, prompt)
	if err != nil {
		stylistChats.WithLabelValues("upstream_error").Inc()
		return nil, err
	}

	reply, perr := parseAIReply(raw)
	selected := matchWardrobe(reply, wardrobe)

	res := &ChatResult{Success: true, Message: msgOutfitGenerated}
	if perr != nil || len(selected) == 0 {
		selected = randomFallback(wardrobe)
		res.Degraded = true
		res.Message = msgDegradedOutfit
		s.log.Warn("ai reply unusable, serving degraded outfit",
			zap.String("uid", userID), zap.Bool("parse_failed", perr != nil))
	} else {
		res.RecommendationReason = firstNonEmpty(reply.RecommendationReason, reply.OutfitDescription)
		res.StylingTips = reply.StylingTips
	}
	res.Items = selected
	res.ImageURL = outfitImageURL(selected)

	// AI 已经调用成功，落库失败只记日志，推荐照常返回
	if outfitID, err := s.persist(userID, in, raw, selected, res.Degraded); err != nil {
		s.log.Error("persist generated outfit failed", zap.String("uid", userID), zap.Error(err))
	} else {
		res.GeneratedOutfitID = outfitID
	}

	if s.affiliates != nil {
		keywords := make([]string, 0, len(selected))
		categories := make([]string, 0, len(selected))
		for _, it := range selected {
			keywords = append(keywords, it.ItemName)
			categories = append(categories, it.CategoryName)
		}
		res.AffiliateProducts = s.affiliates.FindBestMatches(keywords, categories, 0)
	}
	if res.Degraded {
		stylistChats.WithLabelValues("degraded").Inc()
	} else {
		stylistChats.WithLabelValues("ok").Inc()
	}
	return res, nil
}

// matchWardrobe 只保留真实存在于衣柜里的 itemId，AI 杜撰的一律丢弃
func matchWardrobe(reply *aiReply, wardrobe []domain.Item) []SelectedItem {
	if reply == nil {
		return nil
	}
	byID := make(map[string]*domain.Item, len(wardrobe))
	for i := range wardrobe {
		byID[wardrobe[i].ID] = &wardrobe[i]
	}
	var out []SelectedItem
	for _, sel := range reply.SelectedItems {
		id := strings.TrimSpace(sel.ItemID)
		it, ok := byID[id]
		if !ok {
			continue
		}
		// 同一单品只取第一次出现，AI 重复选择不产生重复行
		delete(byID, id)
		out = append(out, toSelected(it, sel.Reason))
	}
	return out
}

func randomFallback(wardrobe []domain.Item) []SelectedItem {
	n := fallbackItemCount
	if len(wardrobe) < n {
		n = len(wardrobe)
	}
	out := make([]SelectedItem, 0, n)
	for _, idx := range rand.Perm(len(wardrobe))[:n] {
		out = append(out, toSelected(&wardrobe[idx], ""))
	}
	return out
}

func toSelected(it *domain.Item, reason string) SelectedItem {
	sel := SelectedItem{
		ItemID:   it.ID,
		ItemName: it.Name,
		ImageURL: it.ImageURL,
		Reason:   reason,
	}
	if it.Category != nil {
		sel.CategoryName = it.Category.Name
	}
	return sel
}

func outfitImageURL(selected []SelectedItem) string {
	for _, it := range selected {
		if it.ImageURL != "" {
			return it.ImageURL
		}
	}
	return placeholderOutfit
}

func (s *StylistService) persist(userID string, in ChatInput, rawReply string, selected []SelectedItem, degraded bool) (string, error) {
	now := s.now()
	outfit := &domain.Outfit{
		ID:            utils.NewID(),
		UserID:        userID,
		Name:          "AI Outfit " + now.Format("02/01/2006 15:04"),
		Description:   "AI generated: " + in.UserMessage,
		Occasion:      in.Occasion,
		Weather:       in.Weather,
		Season:        in.Season,
		IsAIGenerated: true,
		IsActive:      true,
	}
	outfit.CreatedBy = userID

	items := make([]domain.OutfitItem, 0, len(selected))
	for i, sel := range selected {
		items = append(items, domain.OutfitItem{
			ItemID:        sel.ItemID,
			ItemType:      sel.CategoryName,
			PositionOrder: i + 1,
		})
	}
	ch := &domain.ChatHistory{
		ID:              utils.NewID(),
		UserID:          userID,
		UserMessage:     in.UserMessage,
		AIResponse:      rawReply,
		Occasion:        in.Occasion,
		Weather:         in.Weather,
		Season:          in.Season,
		AdditionalPrefs: in.AdditionalPrefs,
		ChatType:        domain.ChatTypeOutfitRecommendation,
		IsActive:        true,
	}
	ch.CreatedBy = userID
	if degraded {
		ch.ChatType = domain.ChatTypeOutfitRecommendation + ":degraded"
	}
	// 三张表一次事务：任何一步失败都不留半截数据
	if err := s.outfits.CreateGenerated(outfit, items, ch); err != nil {
		return "", err
	}
	return outfit.ID, nil
}

// buildStylistPrompt 确定性渲染：画像 + 请求 + 衣柜全量清单 + 期望 JSON schema
func buildStylistPrompt(u *domain.User, in ChatInput, wardrobe []domain.Item) string {
	var b strings.Builder

	b.WriteString("CUSTOMER PROFILE:\n")
	writeField(&b, "Gender", u.Gender)
	if u.BirthDate != nil {
		fmt.Fprintf(&b, "- Age: %d\n", time.Now().Year()-u.BirthDate.Year())
	}
	writeField(&b, "Style preferences", u.StylePreferences)
	writeField(&b, "Body type", u.BodyType)
	writeField(&b, "Skin tone", u.SkinTone)
	if u.HeightCm > 0 {
		fmt.Fprintf(&b, "- Height: %dcm\n", u.HeightCm)
	}
	if u.WeightKg > 0 {
		fmt.Fprintf(&b, "- Weight: %dkg\n", u.WeightKg)
	}

	b.WriteString("\nCUSTOMER REQUEST:\n")
	writeField(&b, "Request", in.UserMessage)
	writeField(&b, "Occasion", in.Occasion)
	writeField(&b, "Weather", in.Weather)
	writeField(&b, "Season", in.Season)
	writeField(&b, "Additional notes", in.AdditionalPrefs)

	b.WriteString("\nAVAILABLE WARDROBE ITEMS:\n")
	for _, it := range wardrobe {
		fmt.Fprintf(&b, "- ID: %s\n", it.ID)
		fmt.Fprintf(&b, "  Name: %s\n", it.Name)
		if it.Category != nil {
			fmt.Fprintf(&b, "  Category: %s\n", it.Category.Name)
		}
		if it.Color != nil {
			fmt.Fprintf(&b, "  Color: %s\n", it.Color.Name)
		}
		writeIndented(&b, "Brand", it.Brand)
		writeIndented(&b, "Size", it.Size)
	}

	b.WriteString("\nTASK:\n")
	b.WriteString("1. Analyze the customer's request and profile.\n")
	b.WriteString("2. Consider every wardrobe item listed above.\n")
	b.WriteString("3. Select the items that form a complete, coherent outfit.\n")
	b.WriteString("4. Make sure the outfit suits the occasion, weather and requested style.\n")
	b.WriteString("5. Explain the reasoning behind each selection.\n")

	b.WriteString("\nRESPONSE FORMAT (pure JSON, no markdown):\n")
	b.WriteString(`{
  "success": true,
  "selectedItems": [
    {"itemId": "item-id", "itemName": "item-name", "reason": "why this item"}
  ],
  "outfitDescription": "overall description",
  "styleAnalysis": "style analysis",
  "recommendationReason": "why this outfit fits",
  "stylingTips": "how to wear and accessorize"
}`)
	return b.String()
}

func writeField(b *strings.Builder, label, v string) {
	if v != "" {
		fmt.Fprintf(b, "- %s: %s\n", label, v)
	}
}

func writeIndented(b *strings.Builder, label, v string) {
	if v != "" {
		fmt.Fprintf(b, "  %s: %s\n", label, v)
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
