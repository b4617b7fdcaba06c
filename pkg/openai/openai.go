package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat-completion request to the OpenAI API
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := o.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return transformResponse(&wireResp), nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest converts a request to the wire format
func (o *openAIImpl) transformRequest(req *Request) *wireRequest {
	wireReq := &wireRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]wireMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		wireReq.Messages = append(wireReq.Messages, wireMessage{
			Role:    "system",
			Content: req.SystemInstruction.Content,
		})
	}

	for _, msg := range req.Messages {
		wireReq.Messages = append(wireReq.Messages, wireMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return wireReq
}

func transformResponse(resp *wireResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]

	return &Response{
		Content: Message{
			Role:    choice.Message.Role,
			Content: choice.Message.Content,
		},
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
}
