package assistant

import (
	"context"
	"strings"

	"github.com/muhammadheryan/railway-reservation/constant"
	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/muhammadheryan/railway-reservation/utils/errors"
	"github.com/muhammadheryan/railway-reservation/utils/logger"
	"go.uber.org/zap"
)

// PlaceholderReply is returned until a real model is plugged in.
const PlaceholderReply = "AI Assistant: I'm processing your request..."

type AssistantApp interface {
	Reply(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

type assistantAppImpl struct{}

func NewAssistantApp() AssistantApp {
	return &assistantAppImpl{}
}

func (s *assistantAppImpl) Reply(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	logger.Debug("[Reply] chat message", zap.Int("length", len(msg)))
	return &model.ChatResponse{Reply: PlaceholderReply}, nil
}
