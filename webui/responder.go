package webui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/railway-reservation/model"
)

// PlaceholderReply is what the assistant says until a real backend answers.
const PlaceholderReply = "AI Assistant: I'm processing your request..."

// Responder produces the assistant's answer to a chat message.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}

// PlaceholderResponder always answers with PlaceholderReply.
type PlaceholderResponder struct{}

func (PlaceholderResponder) Respond(context.Context, string) (string, error) {
	return PlaceholderReply, nil
}

// RemoteResponder asks the reservation service's /assistant/chat endpoint.
type RemoteResponder struct {
	BaseURL string
	Client  *http.Client
}

func NewRemoteResponder(baseURL string) *RemoteResponder {
	return &RemoteResponder{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RemoteResponder) Respond(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(model.ChatRequest{Message: message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.BaseURL+"/assistant/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var res model.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	return res.Reply, nil
}
