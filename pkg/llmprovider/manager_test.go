package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func testConfig() *Config {
	return &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: time.Second,
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	expected := &Response{
		Content:      Message{Role: RoleAssistant, Content: "Hello from primary"},
		ProviderName: "primary",
		ModelName:    "primary-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 20, TotalTokens: 120},
	}
	primary := &mockProvider{name: "primary", model: "primary-model", response: expected}
	secondary := &mockProvider{name: "secondary", model: "secondary-model"}

	manager := NewManager([]Provider{primary, secondary}, testConfig(), &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "Hello from primary" {
		t.Errorf("expected primary response, got %q", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("expected primary called once, got %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("expected secondary not called, got %d calls", secondary.callCount)
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:  "secondary",
		model: "m2",
		response: &Response{
			Content:      Message{Role: RoleAssistant, Content: "from secondary"},
			ProviderName: "secondary",
		},
	}

	manager := NewManager([]Provider{primary, secondary}, testConfig(), &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "from secondary" {
		t.Errorf("expected secondary response, got %q", resp.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("expected primary attempted once, got %d", primary.callCount)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", response: &Response{}}

	cfg := testConfig()
	cfg.FallbackEnabled = false
	manager := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	if secondary.callCount != 0 {
		t.Errorf("secondary should not be tried when fallback disabled, got %d calls", secondary.callCount)
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	providers := []Provider{
		&mockProvider{name: "a", model: "m1", shouldFail: true},
		&mockProvider{name: "b", model: "m2", shouldFail: true},
	}
	manager := NewManager(providers, testConfig(), &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, testConfig(), &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestGenerateContent_RetryBeforeFallback(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", response: &Response{}}

	cfg := testConfig()
	cfg.RetryAttempts = 3
	manager := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.callCount != 3 {
		t.Errorf("expected 3 retry attempts on primary, got %d", primary.callCount)
	}
}

func TestGenerateWithModel_PrefersMatchingProvider(t *testing.T) {
	first := &mockProvider{name: "first", model: "gpt-4o-mini", response: &Response{
		Content: Message{Role: RoleAssistant, Content: "first"},
	}}
	second := &mockProvider{name: "second", model: "deepseek-chat", response: &Response{
		Content: Message{Role: RoleAssistant, Content: "second"},
	}}

	manager := NewManager([]Provider{first, second}, testConfig(), &mockLogger{})

	resp, err := manager.GenerateWithModel(context.Background(), "deepseek-chat", &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "second" {
		t.Errorf("expected matching provider preferred, got %q", resp.Text())
	}
	if first.callCount != 0 {
		t.Errorf("expected first provider skipped, got %d calls", first.callCount)
	}
}

func TestGenerateWithModel_FallsBackToOthers(t *testing.T) {
	matching := &mockProvider{name: "matching", model: "deepseek-chat", shouldFail: true}
	other := &mockProvider{name: "other", model: "gpt-4o-mini", response: &Response{
		Content: Message{Role: RoleAssistant, Content: "other"},
	}}

	manager := NewManager([]Provider{other, matching}, testConfig(), &mockLogger{})

	resp, err := manager.GenerateWithModel(context.Background(), "deepseek-chat", &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "other" {
		t.Errorf("expected fallback to other provider, got %q", resp.Text())
	}
	if matching.callCount != 1 {
		t.Errorf("expected matching provider tried first, got %d calls", matching.callCount)
	}
}

func TestGenerateWithModel_EmptyModelUsesPriorityOrder(t *testing.T) {
	first := &mockProvider{name: "first", model: "m1", response: &Response{
		Content: Message{Role: RoleAssistant, Content: "first"},
	}}
	second := &mockProvider{name: "second", model: "m2", response: &Response{}}

	manager := NewManager([]Provider{first, second}, testConfig(), &mockLogger{})

	resp, err := manager.GenerateWithModel(context.Background(), "", &Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "first" {
		t.Errorf("expected priority order, got %q", resp.Text())
	}
}

func TestHasModel(t *testing.T) {
	manager := NewManager([]Provider{
		&mockProvider{name: "a", model: "gpt-4o-mini"},
		&mockProvider{name: "b", model: "deepseek-chat"},
	}, testConfig(), &mockLogger{})

	if !manager.HasModel("deepseek-chat") {
		t.Error("expected HasModel to find deepseek-chat")
	}
	if manager.HasModel("claude-3") {
		t.Error("expected HasModel to reject unknown model")
	}
}

func TestModels_PriorityOrder(t *testing.T) {
	manager := NewManager([]Provider{
		&mockProvider{name: "a", model: "m1"},
		&mockProvider{name: "b", model: "m2"},
	}, testConfig(), &mockLogger{})

	models := manager.Models()
	if len(models) != 2 || models[0] != "m1" || models[1] != "m2" {
		t.Errorf("unexpected models list: %v", models)
	}
}
