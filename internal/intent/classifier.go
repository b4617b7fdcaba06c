package intent

import (
	"context"
	"fmt"
	"strings"

	"office-assistant/pkg/llmprovider"
)

// Analyze classifies one user message. All failure modes degrade to a
// zero-confidence result so the caller can fall back to general
// conversation instead of surfacing an error.
func (c *implClassifier) Analyze(ctx context.Context, userMessage string) Result {
	if strings.TrimSpace(userMessage) == "" {
		return Result{Reason: "空白輸入"}
	}

	req := c.buildRequest(userMessage)

	resp, err := c.llm.GenerateWithModel(ctx, c.model, req)
	if err != nil {
		c.l.Warnf(ctx, "intent.Analyze: completion failed: %v", err)
		return Result{Reason: fmt.Sprintf("分析失敗: %v", err)}
	}

	parsed, ok := parseResponse(resp.Text())
	if !ok {
		c.l.Warnf(ctx, "intent.Analyze: unparseable response: %s", resp.Text())
		return parsed
	}

	result := c.normalize(parsed)
	c.l.Debugf(ctx, "intent.Analyze: category=%s action=%s confidence=%.2f",
		result.Category, result.Action, result.Confidence)
	return result
}

func (c *implClassifier) buildPrompt() string {
	section := ""
	if c.allowModelSwitch {
		section = modelFeatureSection
	}
	return fmt.Sprintf(promptTemplate, section)
}

// buildRequest shapes the completion request around the model's
// capabilities. Models without system-role support get the prompt
// merged into a single user turn.
func (c *implClassifier) buildRequest(userMessage string) *llmprovider.Request {
	prompt := c.buildPrompt()
	caps := llmprovider.CapabilitiesFor(c.model)

	req := &llmprovider.Request{MaxTokens: maxTokens}
	if caps.SupportsTemperature {
		req.Temperature = temperature
	}

	if caps.SupportsSystemRole {
		req.SystemInstruction = &llmprovider.Message{Role: llmprovider.RoleSystem, Content: prompt}
		req.Messages = []llmprovider.Message{{Role: llmprovider.RoleUser, Content: userMessage}}
		return req
	}

	combined := fmt.Sprintf("%s\n\n用戶輸入: %s", prompt, userMessage)
	req.Messages = []llmprovider.Message{{Role: llmprovider.RoleUser, Content: combined}}
	return req
}

// normalize forces a parsed result into the locally-owned taxonomy.
// LLM output is never trusted directly; every field is re-derived or
// clamped.
func (c *implClassifier) normalize(r Result) Result {
	allowed := map[string]struct{}{
		CategoryTodo:    {},
		CategoryMeeting: {},
		CategoryInfo:    {},
	}
	if c.allowModelSwitch {
		allowed[CategoryModel] = struct{}{}
	}

	category := strings.ToLower(r.Category)
	if _, ok := allowed[category]; !ok {
		r.IsExistingFeature = false
		r.Reason = fmt.Sprintf("不支援的類別: %s", r.Category)
		r.Category = ""
		r.Confidence = 0.0
		return r
	}

	r.Category = category
	// An allowed category always implies the feature exists, whatever
	// the raw output claimed.
	r.IsExistingFeature = true

	if r.Confidence < 0.0 {
		r.Confidence = 0.0
	}
	if r.Confidence > 1.0 {
		r.Confidence = 1.0
	}
	return r
}
