package service

import (
	"encoding/json"
	"errors"
	"strings"
)

// aiReply AI 回复的期望 schema；全部字段可缺省，解析尽量宽容
type aiReply struct {
	Success              *bool            `json:"success"`
	SelectedItems        []aiSelectedItem `json:"selectedItems"`
	OutfitDescription    string           `json:"outfitDescription"`
	StyleAnalysis        string           `json:"styleAnalysis"`
	RecommendationReason string           `json:"recommendationReason"`
	StylingTips          string           `json:"stylingTips"`
}

type aiSelectedItem struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Reason   string `json:"reason"`
}

var errUnparsableReply = errors.New("unparsable ai reply")

// parseAIReply 剥掉可能的 markdown 代码栅栏后按 schema 解析
func parseAIReply(raw string) (*aiReply, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, errUnparsableReply
	}
	var r aiReply
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return nil, errUnparsableReply
	}
	return &r, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			s = s[i+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
