package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"hive/internal/models"
)

// fakeAPI records how often each messaging endpoint is hit and serves
// minimal valid bodies.
type fakeAPI struct {
	mu            sync.Mutex
	threadHits    map[string]int
	convHits      int
	sendHits      int
	lastSendToken string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{threadHits: make(map[string]int)}
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/messages/with/"):
			peer := strings.TrimPrefix(r.URL.Path, "/api/messages/with/")
			f.threadHits[peer]++
			json.NewEncoder(w).Encode([]models.ThreadMessageResponse{})
		case r.URL.Path == "/api/messages/conversations":
			f.convHits++
			json.NewEncoder(w).Encode([]models.ConversationSummary{})
		case r.URL.Path == "/api/messages/send":
			f.sendHits++
			f.lastSendToken = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Message{ID: 1, SenderID: 1, ReceiverID: 2, Content: "hi"})
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(models.ErrorResponse{Message: "not found"})
		}
	})
}

func (f *fakeAPI) snapshot() (map[string]int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	threads := make(map[string]int, len(f.threadHits))
	for k, v := range f.threadHits {
		threads[k] = v
	}
	return threads, f.convHits, f.sendHits
}

func waitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPollerSelectStartsImmediateFetchThenTicks(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	poller := NewPoller(New(server.URL, "token"), 20*time.Millisecond)
	defer poller.Close()

	var mu sync.Mutex
	var delivered []uint
	poller.SetThreadHandler(func(peerID uint, messages []models.ThreadMessageResponse) {
		mu.Lock()
		delivered = append(delivered, peerID)
		mu.Unlock()
	})

	poller.Select(2)

	// The first fetch happens before the first tick, then the interval
	// drives repeats.
	waitFor(t, time.Second, func() bool {
		threads, _, _ := api.snapshot()
		return threads["2"] >= 3
	})

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) == 0 {
		t.Fatal("thread handler never invoked")
	}
	for _, peerID := range delivered {
		if peerID != 2 {
			t.Fatalf("handler invoked for wrong peer %d", peerID)
		}
	}
}

func TestPollerSelectReplacesPreviousLoop(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	poller := NewPoller(New(server.URL, "token"), 20*time.Millisecond)
	defer poller.Close()

	poller.Select(2)
	waitFor(t, time.Second, func() bool {
		threads, _, _ := api.snapshot()
		return threads["2"] >= 2
	})

	poller.Select(3)
	waitFor(t, time.Second, func() bool {
		threads, _, _ := api.snapshot()
		return threads["3"] >= 2
	})

	// The old loop is cancelled: peer 2's count stays put while peer 3
	// keeps climbing.
	threadsBefore, _, _ := api.snapshot()
	waitFor(t, time.Second, func() bool {
		threads, _, _ := api.snapshot()
		return threads["3"] >= threadsBefore["3"]+2
	})
	threadsAfter, _, _ := api.snapshot()
	if threadsAfter["2"] != threadsBefore["2"] {
		t.Fatalf("previous peer still being polled: %d -> %d", threadsBefore["2"], threadsAfter["2"])
	}
}

func TestPollerCloseStopsPolling(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	poller := NewPoller(New(server.URL, "token"), 20*time.Millisecond)
	poller.Select(2)
	waitFor(t, time.Second, func() bool {
		threads, _, _ := api.snapshot()
		return threads["2"] >= 2
	})

	poller.Close()
	time.Sleep(60 * time.Millisecond)
	threadsBefore, _, _ := api.snapshot()
	time.Sleep(80 * time.Millisecond)
	threadsAfter, _, _ := api.snapshot()
	if threadsAfter["2"] != threadsBefore["2"] {
		t.Fatalf("polling continued after close: %d -> %d", threadsBefore["2"], threadsAfter["2"])
	}
}

func TestPollerSendRefreshesThreadAndConversations(t *testing.T) {
	api := newFakeAPI()
	server := httptest.NewServer(api.handler())
	defer server.Close()

	// A long interval isolates the refreshes triggered by Send itself.
	poller := NewPoller(New(server.URL, "token"), time.Hour)
	defer poller.Close()
	poller.Select(2)

	waitFor(t, time.Second, func() bool {
		threads, _, _ := api.snapshot()
		return threads["2"] == 1
	})

	message, err := poller.Send(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message.ID != 1 {
		t.Fatalf("unexpected message: %+v", message)
	}

	threads, convHits, sendHits := api.snapshot()
	if sendHits != 1 {
		t.Errorf("expected 1 send, got %d", sendHits)
	}
	if threads["2"] != 2 {
		t.Errorf("send must refresh the open thread, got %d fetches", threads["2"])
	}
	if convHits != 1 {
		t.Errorf("send must refresh the conversation list, got %d fetches", convHits)
	}
	if api.lastSendToken != "Bearer token" {
		t.Errorf("missing bearer token on send: %q", api.lastSendToken)
	}
}

func TestPollerReportsErrorsAndKeepsPolling(t *testing.T) {
	var mu sync.Mutex
	failures := 2
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		fail := hits <= failures
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(models.ErrorResponse{Message: "boom"})
			return
		}
		json.NewEncoder(w).Encode([]models.ThreadMessageResponse{})
	}))
	defer server.Close()

	poller := NewPoller(New(server.URL, "token"), 20*time.Millisecond)
	defer poller.Close()

	var errMu sync.Mutex
	var errorCount int
	poller.SetErrorHandler(func(err error) {
		errMu.Lock()
		errorCount++
		errMu.Unlock()
	})
	threadDelivered := make(chan struct{}, 1)
	poller.SetThreadHandler(func(peerID uint, messages []models.ThreadMessageResponse) {
		select {
		case threadDelivered <- struct{}{}:
		default:
		}
	})

	poller.Select(2)

	select {
	case <-threadDelivered:
	case <-time.After(time.Second):
		t.Fatal("poller never recovered after failed fetches")
	}

	errMu.Lock()
	defer errMu.Unlock()
	if errorCount != failures {
		t.Errorf("expected %d reported errors, got %d", failures, errorCount)
	}
}
