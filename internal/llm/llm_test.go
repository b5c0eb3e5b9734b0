package llm

import (
	"context"
	"sync"
	"testing"
	"time"
)

// MockProvider records calls and returns canned responses.
type MockProvider struct {
	mu       sync.Mutex
	Calls    []Request
	Response *Response
	Err      error
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		Response: &Response{
			Content: `{"personal_info":{}}`,
			Model:   "mock-model",
		},
	}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Response, nil
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Complete(context.Background(), Request{Prompt: "analyze"})
	if err != nil {
		t.Fatal(err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Prompt != "analyze" {
		t.Errorf("recorded prompt: %q", mock.Calls[0].Prompt)
	}
}

func TestNewProviderUnsupported(t *testing.T) {
	if _, err := NewProvider("cohere", "model"); err == nil {
		t.Error("expected error for unsupported provider type")
	}
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	mock := NewMockProvider()
	limited := NewRateLimitedProvider(mock, 60)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		if _, err := limited.Complete(ctx, Request{Prompt: "x"}); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
	if mock.CallCount() != 5 {
		t.Errorf("expected 5 completed calls, got %d", mock.CallCount())
	}
}

func TestRateLimiterHonorsCancellation(t *testing.T) {
	mock := NewMockProvider()
	limited := NewRateLimitedProvider(mock, 1)

	ctx := context.Background()
	if _, err := limited.Complete(ctx, Request{}); err != nil {
		t.Fatal(err)
	}

	// Bucket is now empty; a cancelled context must unblock the wait.
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := limited.Complete(cancelled, Request{}); err == nil {
		t.Error("expected context error when bucket is empty and context cancelled")
	}
}
