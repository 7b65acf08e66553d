// Package client is a Go consumer of the messaging API: an authenticated
// HTTP client plus a Poller that mirrors how the web client keeps an open
// conversation fresh by polling. There is no push channel; every update is
// pulled.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"hive/internal/models"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Conversations(ctx context.Context) ([]models.ConversationSummary, error) {
	var conversations []models.ConversationSummary
	if err := c.do(ctx, http.MethodGet, "/api/messages/conversations", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (c *Client) Thread(ctx context.Context, peerID uint) ([]models.ThreadMessageResponse, error) {
	var messages []models.ThreadMessageResponse
	path := fmt.Sprintf("/api/messages/with/%d", peerID)
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) Send(ctx context.Context, receiverID uint, content string) (*models.Message, error) {
	body := models.SendMessageRequestBody{
		ReceiverID: receiverID,
		Content:    content,
	}
	var message models.Message
	if err := c.do(ctx, http.MethodPost, "/api/messages/send", &body, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) UnreadCount(ctx context.Context) (int64, error) {
	var response models.UnreadCountResponse
	if err := c.do(ctx, http.MethodGet, "/api/messages/unread-count", nil, &response); err != nil {
		return 0, err
	}
	return response.Count, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errorResponse models.ErrorResponse
		if decodeErr := json.NewDecoder(response.Body).Decode(&errorResponse); decodeErr == nil && errorResponse.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, errorResponse.Message, response.StatusCode)
		}
		return fmt.Errorf("%s %s: status %d", method, path, response.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}
