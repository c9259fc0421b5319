package assistant_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/railway-reservation/application/assistant"
	"github.com/muhammadheryan/railway-reservation/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssistantApp_Reply(t *testing.T) {
	app := assistant.NewAssistantApp()

	got, err := app.Reply(context.Background(), &model.ChatRequest{Message: "  trains to Mumbai?  "})
	require.NoError(t, err)
	assert.Equal(t, assistant.PlaceholderReply, got.Reply)

	_, err = app.Reply(context.Background(), &model.ChatRequest{Message: "   "})
	assert.Error(t, err)
}
