package mirror

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{Network: "testnet", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func encodeMessage(text string) string {
	return base64.StdEncoding.EncodeToString([]byte(text))
}

func TestNewClientDefaultBaseURLs(t *testing.T) {
	cases := []struct {
		network  string
		expected string
	}{
		{"testnet", "https://testnet.mirrornode.hedera.com"},
		{"mainnet", "https://mainnet-public.mirrornode.hedera.com"},
		{"previewnet", "https://previewnet.mirrornode.hedera.com"},
		{"", "https://testnet.mirrornode.hedera.com"},
	}

	for _, tc := range cases {
		client, err := NewClient(Config{Network: tc.network})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.network, err)
		}
		if client.BaseURL() != tc.expected {
			t.Fatalf("network %q: expected %s, got %s", tc.network, tc.expected, client.BaseURL())
		}
	}
}

func TestNewClientRejectsBadInput(t *testing.T) {
	if _, err := NewClient(Config{Network: "badnet"}); err == nil {
		t.Fatal("expected error for unsupported network")
	}
	if _, err := NewClient(Config{Network: "testnet", BaseURL: "ftp://mirror.example.com"}); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
	if _, err := NewClient(Config{Network: "testnet", BaseURL: "https://"}); err == nil {
		t.Fatal("expected error for missing host")
	}
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	client, err := NewClient(Config{Network: "testnet", BaseURL: "https://custom.example.com/"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.BaseURL() != "https://custom.example.com" {
		t.Fatalf("unexpected base URL %s", client.BaseURL())
	}
}

func TestGetJSONSendsAuthAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer my-key" {
			t.Fatalf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Custom") != "value" {
			t.Fatalf("unexpected custom header %q", r.Header.Get("X-Custom"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TopicInfo{TopicID: "0.0.1"})
	}))
	defer server.Close()

	client, err := NewClient(Config{
		Network: "testnet",
		BaseURL: server.URL,
		APIKey:  "my-key",
		Headers: map[string]string{"X-Custom": "value"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := client.GetTopicInfo(context.Background(), "0.0.1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSONErrorResponses(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/topics/0.0.1":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("internal error"))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("not json"))
		}
	})

	if _, err := client.GetTopicInfo(context.Background(), "0.0.1"); err == nil {
		t.Fatal("expected error for server error status")
	}
	if _, err := client.GetTopicInfo(context.Background(), "0.0.2"); err == nil {
		t.Fatal("expected error for malformed response body")
	}
}

func TestGetTopicInfoRequiresTopicID(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	for _, topicID := range []string{"", "   "} {
		if _, err := client.GetTopicInfo(context.Background(), topicID); err == nil {
			t.Fatalf("expected error for topic ID %q", topicID)
		}
	}
}

func TestGetAccountAndMemo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/0.0.12345" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AccountInfo{Account: "0.0.12345", Memo: "the-memo"})
	})

	info, err := client.GetAccount(context.Background(), "0.0.12345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Memo != "the-memo" {
		t.Fatalf("unexpected memo %q", info.Memo)
	}

	memo, err := client.GetAccountMemo(context.Background(), " 0.0.12345 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if memo != "the-memo" {
		t.Fatalf("unexpected memo %q", memo)
	}

	if _, err := client.GetAccount(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty account ID")
	}
}

func TestGetTopicMessagesTimestampFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		timestamps := r.URL.Query()["timestamp"]
		if len(timestamps) != 2 || timestamps[0] != "gte:100.000000001" || timestamps[1] != "lte:200.5" {
			t.Fatalf("unexpected timestamp filters %v", timestamps)
		}
		if r.URL.Query().Get("order") != "asc" {
			t.Fatalf("unexpected order %q", r.URL.Query().Get("order"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(topicMessagesResponse{
			Messages: []TopicMessage{{SequenceNumber: 1, Message: encodeMessage("hello")}},
		})
	})

	messages, err := client.GetTopicMessages(context.Background(), "0.0.1", MessageQueryOptions{
		Order:     "asc",
		StartTime: "100.000000001",
		EndTime:   "200.5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
}

func TestGetTopicMessagesFollowsNextLinks(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		response := topicMessagesResponse{
			Messages: []TopicMessage{{SequenceNumber: int64(calls), Message: encodeMessage("m")}},
		}
		if calls == 1 {
			response.Links.Next = "/api/v1/topics/0.0.1/messages?page=2"
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})

	messages, err := client.GetTopicMessages(context.Background(), "0.0.1", MessageQueryOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 || calls != 2 {
		t.Fatalf("expected 2 messages over 2 calls, got %d over %d", len(messages), calls)
	}
}

func TestGetTopicMessagesStopsAtPageCap(t *testing.T) {
	// The server always advertises another page; the crawl must stop at the
	// page cap instead of looping forever.
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		response := topicMessagesResponse{
			Messages: []TopicMessage{{SequenceNumber: int64(calls), Message: encodeMessage("m")}},
		}
		response.Links.Next = "/api/v1/topics/0.0.1/messages?page=next"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})

	messages, err := client.GetTopicMessages(context.Background(), "0.0.1", MessageQueryOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != maxMessagePages {
		t.Fatalf("expected %d page fetches, got %d", maxMessagePages, calls)
	}
	if len(messages) != maxMessagePages {
		t.Fatalf("expected %d messages, got %d", maxMessagePages, len(messages))
	}
}

func TestGetTopicMessagesLimitTruncatesAcrossPages(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		response := topicMessagesResponse{
			Messages: []TopicMessage{
				{SequenceNumber: int64(2*calls - 1), Message: encodeMessage("a")},
				{SequenceNumber: int64(2 * calls), Message: encodeMessage("b")},
			},
		}
		response.Links.Next = "/api/v1/topics/0.0.1/messages?page=next"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	})

	messages, err := client.GetTopicMessages(context.Background(), "0.0.1", MessageQueryOptions{Limit: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if calls != 2 {
		t.Fatalf("expected 2 page fetches, got %d", calls)
	}
}

func TestGetTopicMessagesRequiresTopicID(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	if _, err := client.GetTopicMessages(context.Background(), "", MessageQueryOptions{}); err == nil {
		t.Fatal("expected error for empty topic ID")
	}
}

func TestGetTopicMessageBySequence(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("sequencenumber") != "eq:5" {
			t.Fatalf("unexpected sequence filter %q", r.URL.Query().Get("sequencenumber"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(topicMessagesResponse{
			Messages: []TopicMessage{{SequenceNumber: 5, Message: encodeMessage("test")}},
		})
	})

	message, err := client.GetTopicMessageBySequence(context.Background(), "0.0.1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message == nil || message.SequenceNumber != 5 {
		t.Fatalf("unexpected message %+v", message)
	}

	for _, sequence := range []int64{0, -1} {
		if _, err := client.GetTopicMessageBySequence(context.Background(), "0.0.1", sequence); err == nil {
			t.Fatalf("expected error for sequence %d", sequence)
		}
	}
}

func TestGetTopicMessageBySequenceNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(topicMessagesResponse{Messages: []TopicMessage{}})
	})

	message, err := client.GetTopicMessageBySequence(context.Background(), "0.0.1", 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message != nil {
		t.Fatalf("expected nil for a missing sequence, got %+v", message)
	}
}

func TestDecodeMessageData(t *testing.T) {
	data, err := DecodeMessageData(TopicMessage{Message: encodeMessage("hello world")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected payload %q", string(data))
	}

	for _, payload := range []string{"", "   "} {
		if _, err := DecodeMessageData(TopicMessage{Message: payload}); err == nil {
			t.Fatalf("expected error for payload %q", payload)
		}
	}
}

func TestDecodeMessageJSON(t *testing.T) {
	var decoded struct {
		Name string `json:"name"`
	}
	if err := DecodeMessageJSON(TopicMessage{Message: encodeMessage(`{"name":"test"}`)}, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Name != "test" {
		t.Fatalf("unexpected name %q", decoded.Name)
	}

	var target map[string]string
	if err := DecodeMessageJSON(TopicMessage{Message: "not-base64!!"}, &target); err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if err := DecodeMessageJSON(TopicMessage{Message: encodeMessage("not json")}, &target); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestGetTransactionNormalizesID(t *testing.T) {
	// The SDK renders transaction IDs as 0.0.1@123.456; the REST API wants
	// 0.0.1-123-456.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/transactions/0.0.1-123-456" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactionsResponse{
			Transactions: []Transaction{{TransactionID: "0.0.1-123-456", Result: "SUCCESS"}},
		})
	})

	tx, err := client.GetTransaction(context.Background(), "0.0.1@123.456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx == nil || tx.Result != "SUCCESS" {
		t.Fatalf("unexpected transaction %+v", tx)
	}

	if _, err := client.GetTransaction(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty transaction ID")
	}
}

func TestGetTransactionNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactionsResponse{Transactions: []Transaction{}})
	})

	tx, err := client.GetTransaction(context.Background(), "0.0.1-123-456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx != nil {
		t.Fatalf("expected nil for a missing transaction, got %+v", tx)
	}
}

func TestResolveURLForms(t *testing.T) {
	client := &Client{baseURL: "https://example.com"}
	cases := []struct {
		input    string
		expected string
	}{
		{"/api/test", "https://example.com/api/test"},
		{"api/test", "https://example.com/api/test"},
		{"https://other.com/path", "https://other.com/path"},
		{"http://other.com/path", "http://other.com/path"},
	}

	for _, tc := range cases {
		if resolved := client.resolveURL(tc.input); resolved != tc.expected {
			t.Fatalf("resolveURL(%q): got %s, want %s", tc.input, resolved, tc.expected)
		}
	}
}
