package client

import (
	"context"
	"sync"
	"time"

	"hive/internal/models"
)

// DefaultPollInterval matches the web client's 3-second refresh.
const DefaultPollInterval = 3 * time.Second

// Poller keeps one open conversation fresh. Selecting a peer fetches the
// thread immediately and then on a fixed interval; selecting another peer or
// closing cancels the previous loop first, so at most one timer is ever
// running. Sending awaits persistence, then refreshes the thread and the
// conversation list before returning.
type Poller struct {
	client   *Client
	interval time.Duration

	onThread        func(peerID uint, messages []models.ThreadMessageResponse)
	onConversations func(conversations []models.ConversationSummary)
	onError         func(err error)

	mu     sync.Mutex
	peerID uint
	cancel context.CancelFunc
}

func NewPoller(client *Client, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		client:   client,
		interval: interval,
	}
}

// SetThreadHandler registers the callback for every thread refresh.
func (p *Poller) SetThreadHandler(handler func(peerID uint, messages []models.ThreadMessageResponse)) {
	p.onThread = handler
}

// SetConversationsHandler registers the callback for conversation-list
// refreshes.
func (p *Poller) SetConversationsHandler(handler func(conversations []models.ConversationSummary)) {
	p.onConversations = handler
}

// SetErrorHandler registers the callback for fetch failures. Polling
// continues after an error; the next tick retries.
func (p *Poller) SetErrorHandler(handler func(err error)) {
	p.onError = handler
}

// Select switches the open conversation to peerID, cancelling any previous
// polling loop before starting the new one.
func (p *Poller) Select(peerID uint) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.peerID = peerID
	p.mu.Unlock()

	go p.loop(ctx, peerID)
}

// Close stops polling. No conversation is selected afterwards.
func (p *Poller) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.peerID = 0
}

// Send persists the message, then refreshes the open thread and the
// conversation list before returning, so the caller never renders a stale
// view of its own send.
func (p *Poller) Send(ctx context.Context, content string) (*models.Message, error) {
	p.mu.Lock()
	peerID := p.peerID
	p.mu.Unlock()

	message, err := p.client.Send(ctx, peerID, content)
	if err != nil {
		return nil, err
	}

	p.fetchThread(ctx, peerID)
	p.fetchConversations(ctx)
	return message, nil
}

func (p *Poller) loop(ctx context.Context, peerID uint) {
	p.fetchThread(ctx, peerID)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchThread(ctx, peerID)
		}
	}
}

func (p *Poller) fetchThread(ctx context.Context, peerID uint) {
	messages, err := p.client.Thread(ctx, peerID)
	if err != nil {
		if p.onError != nil && ctx.Err() == nil {
			p.onError(err)
		}
		return
	}
	if p.onThread != nil {
		p.onThread(peerID, messages)
	}
}

func (p *Poller) fetchConversations(ctx context.Context) {
	conversations, err := p.client.Conversations(ctx)
	if err != nil {
		if p.onError != nil && ctx.Err() == nil {
			p.onError(err)
		}
		return
	}
	if p.onConversations != nil {
		p.onConversations(conversations)
	}
}
