package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func newClient(cfg Config) *client {
	timeout := DefaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &client{
		config:     cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Model() string {
	return c.config.Model
}

func (c *client) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	wireReq := c.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.config.APIURL, c.config.Model, c.config.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: call api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gemini: read response: %w", err)
	}

	var wireResp wireResponse
	if err := json.Unmarshal(respBody, &wireResp); err != nil {
		return nil, fmt.Errorf("gemini: unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if wireResp.Error != nil {
			return nil, fmt.Errorf("gemini: api error %d (%s): %s", wireResp.Error.Code, wireResp.Error.Status, wireResp.Error.Message)
		}
		return nil, fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	return c.transformResponse(&wireResp)
}

// transformRequest maps the neutral request onto Gemini's contents/parts format.
// Gemini uses "model" instead of "assistant" for the reply role.
func (c *client) transformRequest(req Request) wireRequest {
	wireReq := wireRequest{
		Contents: make([]wireContent, 0, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		wireReq.SystemInstruction = &wireContent{
			Parts: []wirePart{{Text: req.SystemInstruction.Content}},
		}
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role == "assistant" {
			role = "model"
		}
		wireReq.Contents = append(wireReq.Contents, wireContent{
			Role:  role,
			Parts: []wirePart{{Text: msg.Content}},
		})
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		genCfg := &wireGenConfig{MaxOutputTokens: req.MaxTokens}
		if req.Temperature > 0 {
			temp := req.Temperature
			genCfg.Temperature = &temp
		}
		wireReq.GenerationConfig = genCfg
	}

	return wireReq
}

func (c *client) transformResponse(wireResp *wireResponse) (*Response, error) {
	if len(wireResp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates in response")
	}

	var text string
	for _, part := range wireResp.Candidates[0].Content.Parts {
		text += part.Text
	}

	result := &Response{
		Content: text,
		Model:   c.config.Model,
	}
	if wireResp.UsageMeta != nil {
		result.Usage = &Usage{
			PromptTokens:     wireResp.UsageMeta.PromptTokenCount,
			CompletionTokens: wireResp.UsageMeta.CandidatesTokenCount,
			TotalTokens:      wireResp.UsageMeta.TotalTokenCount,
		}
	}
	return result, nil
}
