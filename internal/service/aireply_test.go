package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAIReplyPlainJSON(t *testing.T) {
	r, err := parseAIReply(`{
		"success": true,
		"selectedItems": [{"itemId": "a1", "itemName": "White tee", "reason": "breathable"}],
		"outfitDescription": "light summer look",
		"stylingTips": "roll the sleeves"
	}`)
	require.NoError(t, err)
	require.Len(t, r.SelectedItems, 1)
	assert.Equal(t, "a1", r.SelectedItems[0].ItemID)
	assert.Equal(t, "light summer look", r.OutfitDescription)
	assert.Equal(t, "roll the sleeves", r.StylingTips)
	require.NotNil(t, r.Success)
	assert.True(t, *r.Success)
}

func TestParseAIReplyStripsCodeFences(t *testing.T) {
	for _, raw := range []string{
		"```json\n{\"selectedItems\":[{\"itemId\":\"x\"}]}\n```",
		"```\n{\"selectedItems\":[{\"itemId\":\"x\"}]}\n```",
		"  ```json\n{\"selectedItems\":[{\"itemId\":\"x\"}]}\n```  ",
	} {
		r, err := parseAIReply(raw)
		require.NoError(t, err, "raw: %q", raw)
		require.Len(t, r.SelectedItems, 1)
		assert.Equal(t, "x", r.SelectedItems[0].ItemID)
	}
}

func TestParseAIReplyToleratesMissingFields(t *testing.T) {
	r, err := parseAIReply(`{}`)
	require.NoError(t, err)
	assert.Nil(t, r.Success)
	assert.Empty(t, r.SelectedItems)
}

func TestParseAIReplyGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "sorry, I can't help", "```\nnot json\n```"} {
		_, err := parseAIReply(raw)
		assert.ErrorIs(t, err, errUnparsableReply, "raw: %q", raw)
	}
}
