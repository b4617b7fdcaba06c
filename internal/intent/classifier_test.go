package intent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"office-assistant/pkg/llmprovider"
	"office-assistant/pkg/log"
)

// stubCompleter is a deterministic Completer for tests.
type stubCompleter struct {
	response string
	err      error
	gotModel string
	gotReq   *llmprovider.Request
}

func (s *stubCompleter) GenerateWithModel(ctx context.Context, model string, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.gotModel = model
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llmprovider.Response{
		Content: llmprovider.Message{Role: llmprovider.RoleAssistant, Content: s.response},
	}, nil
}

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "error", Mode: "development", Encoding: "console"})
}

func newTestClassifier(stub *stubCompleter, allowModelSwitch bool) Classifier {
	return New(testLogger(), stub, "gpt-4o-mini", allowModelSwitch)
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("blank input", func(t *testing.T) {
		stub := &stubCompleter{}
		result := newTestClassifier(stub, false).Analyze(ctx, "   ")
		if result.IsExistingFeature || result.Confidence != 0.0 {
			t.Errorf("unexpected result: %+v", result)
		}
		if result.Reason == "" {
			t.Error("expected reason for blank input")
		}
		if stub.gotReq != nil {
			t.Error("blank input should not reach the completion function")
		}
	})

	t.Run("recognized todo intent", func(t *testing.T) {
		stub := &stubCompleter{response: `{"is_existing_feature": true, "category": "todo", "action": "query", "content": "", "confidence": 0.92, "reason": "查詢待辦"}`}
		result := newTestClassifier(stub, false).Analyze(ctx, "我的待辦事項")
		if !result.IsExistingFeature || result.Category != CategoryTodo || result.Action != "query" {
			t.Errorf("unexpected result: %+v", result)
		}
		if result.Confidence != 0.92 {
			t.Errorf("unexpected confidence: %v", result.Confidence)
		}
	})

	t.Run("category outside taxonomy is rejected", func(t *testing.T) {
		stub := &stubCompleter{response: `{"is_existing_feature": true, "category": "weather", "action": "query", "content": "", "confidence": 0.9}`}
		result := newTestClassifier(stub, false).Analyze(ctx, "今天天氣如何")
		if result.IsExistingFeature {
			t.Error("disallowed category must force is_existing_feature=false")
		}
		if result.Category != "" {
			t.Errorf("disallowed category must clear category, got %q", result.Category)
		}
		if result.Confidence != 0.0 {
			t.Errorf("disallowed category must zero confidence, got %v", result.Confidence)
		}
		if !strings.Contains(result.Reason, "weather") {
			t.Errorf("reason should name the rejected category: %q", result.Reason)
		}
	})

	t.Run("uppercase category is lowercased", func(t *testing.T) {
		stub := &stubCompleter{response: `{"category": "TODO", "action": "add", "confidence": 0.8}`}
		result := newTestClassifier(stub, false).Analyze(ctx, "新增待辦")
		if result.Category != CategoryTodo {
			t.Errorf("expected lowercased category, got %q", result.Category)
		}
		if !result.IsExistingFeature {
			t.Error("allowed category must imply is_existing_feature=true")
		}
	})

	t.Run("confidence clamped above", func(t *testing.T) {
		stub := &stubCompleter{response: `{"category": "todo", "action": "add", "confidence": 1.7}`}
		result := newTestClassifier(stub, false).Analyze(ctx, "新增待辦")
		if result.Confidence != 1.0 {
			t.Errorf("expected confidence clamped to 1.0, got %v", result.Confidence)
		}
	})

	t.Run("confidence clamped below", func(t *testing.T) {
		stub := &stubCompleter{response: `{"category": "todo", "action": "add", "confidence": -0.3}`}
		result := newTestClassifier(stub, false).Analyze(ctx, "新增待辦")
		if result.Confidence != 0.0 {
			t.Errorf("expected confidence clamped to 0.0, got %v", result.Confidence)
		}
	})

	t.Run("markdown fenced json", func(t *testing.T) {
		stub := &stubCompleter{response: "```json\n{\"category\":\"todo\",\"action\":\"query\",\"confidence\":0.9,\"content\":\"\"}\n```"}
		result := newTestClassifier(stub, false).Analyze(ctx, "查看清單")
		if result.Category != CategoryTodo {
			t.Errorf("fenced json should parse, got %+v", result)
		}
	})

	t.Run("completion failure degrades", func(t *testing.T) {
		stub := &stubCompleter{err: errors.New("provider timeout")}
		result := newTestClassifier(stub, false).Analyze(ctx, "我的待辦事項")
		if result.IsExistingFeature {
			t.Error("failure must not claim an existing feature")
		}
		if result.Reason == "" {
			t.Error("failure must carry a reason")
		}
	})

	t.Run("unparseable response degrades", func(t *testing.T) {
		stub := &stubCompleter{response: "抱歉，我無法判斷。"}
		result := newTestClassifier(stub, false).Analyze(ctx, "我的待辦事項")
		if result.IsExistingFeature || result.Reason == "" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("model category requires switching enabled", func(t *testing.T) {
		response := `{"category": "model", "action": "select", "content": "gpt-4o", "confidence": 0.9}`

		result := newTestClassifier(&stubCompleter{response: response}, false).Analyze(ctx, "切換模型")
		if result.IsExistingFeature || result.Category != "" {
			t.Errorf("model category must be rejected when switching disabled: %+v", result)
		}

		result = newTestClassifier(&stubCompleter{response: response}, true).Analyze(ctx, "切換模型")
		if !result.IsExistingFeature || result.Category != CategoryModel {
			t.Errorf("model category must pass when switching enabled: %+v", result)
		}
	})
}

func TestBuildRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("system role supported", func(t *testing.T) {
		stub := &stubCompleter{response: `{"category":"info","action":"help","confidence":0.9}`}
		New(testLogger(), stub, "gpt-4o-mini", false).Analyze(ctx, "幫助")

		if stub.gotModel != "gpt-4o-mini" {
			t.Errorf("unexpected model: %s", stub.gotModel)
		}
		if stub.gotReq.SystemInstruction == nil {
			t.Fatal("expected system instruction for standard model")
		}
		if len(stub.gotReq.Messages) != 1 || stub.gotReq.Messages[0].Content != "幫助" {
			t.Errorf("unexpected messages: %+v", stub.gotReq.Messages)
		}
		if stub.gotReq.Temperature != temperature {
			t.Errorf("expected temperature %v, got %v", temperature, stub.gotReq.Temperature)
		}
		if stub.gotReq.MaxTokens != maxTokens {
			t.Errorf("expected max tokens %d, got %d", maxTokens, stub.gotReq.MaxTokens)
		}
	})

	t.Run("system role not supported", func(t *testing.T) {
		stub := &stubCompleter{response: `{"category":"info","action":"help","confidence":0.9}`}
		New(testLogger(), stub, "o1-mini", false).Analyze(ctx, "幫助")

		if stub.gotReq.SystemInstruction != nil {
			t.Error("o1 family must not use a system message")
		}
		if len(stub.gotReq.Messages) != 1 {
			t.Fatalf("expected single merged turn, got %d", len(stub.gotReq.Messages))
		}
		if !strings.Contains(stub.gotReq.Messages[0].Content, "幫助") {
			t.Error("merged turn must contain the user message")
		}
		if stub.gotReq.Temperature != 0 {
			t.Errorf("o1 family must not set temperature, got %v", stub.gotReq.Temperature)
		}
	})

	t.Run("prompt includes model section only when enabled", func(t *testing.T) {
		stub := &stubCompleter{response: `{"category":"info","action":"help","confidence":0.9}`}
		New(testLogger(), stub, "gpt-4o-mini", false).Analyze(ctx, "幫助")
		if strings.Contains(stub.gotReq.SystemInstruction.Content, "Model Selection") {
			t.Error("model section must be absent when switching disabled")
		}

		New(testLogger(), stub, "gpt-4o-mini", true).Analyze(ctx, "幫助")
		if !strings.Contains(stub.gotReq.SystemInstruction.Content, "Model Selection") {
			t.Error("model section must be present when switching enabled")
		}
	})
}
