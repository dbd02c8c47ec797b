// Package llm provides an OpenAI-compatible chat-completion client.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Completer 供 service 层依赖的最小接口，测试中可用假实现替换
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// ErrUnavailable 上游不可达或非 2xx，transport 层映射为 502
var ErrUnavailable = errors.New("llm: upstream unavailable")

type Config struct {
	BaseURL string // 例如 "https://api.openai.com/v1"，留空用官方地址
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Client struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm: model is required")
	}
	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		client: openai.NewClientWithConfig(cc),
		model:  cfg.Model,
		logger: logger.Named("llm"),
	}, nil
}

// Complete 单次调用，不重试；失败一律归类为 ErrUnavailable
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.logger.Error("llm request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrUnavailable)
	}

	c.logger.Info("llm request completed",
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp.Choices[0].Message.Content, nil
}
