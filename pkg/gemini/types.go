package gemini

import (
	"fmt"
	"net/http"
)

// Config holds the Gemini client configuration
type Config struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout int // seconds, 0 means default
}

// Validate checks the configuration and applies defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("gemini: api key is required")
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return nil
}

type client struct {
	config     Config
	httpClient *http.Client
}

// Request is a provider-neutral generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is a single conversation turn
type Message struct {
	Role    string
	Content string
}

// Response is the generation result
type Response struct {
	Content string
	Model   string
	Usage   *Usage
}

// Usage reports token consumption
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Gemini wire format

type wireRequest struct {
	Contents          []wireContent  `json:"contents"`
	SystemInstruction *wireContent   `json:"systemInstruction,omitempty"`
	GenerationConfig  *wireGenConfig `json:"generationConfig,omitempty"`
}

type wireContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []wirePart `json:"parts"`
}

type wirePart struct {
	Text string `json:"text"`
}

type wireGenConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
}

type wireResponse struct {
	Candidates []wireCandidate `json:"candidates"`
	UsageMeta  *wireUsage      `json:"usageMetadata,omitempty"`
	Error      *wireError      `json:"error,omitempty"`
}

type wireCandidate struct {
	Content      wireContent `json:"content"`
	FinishReason string      `json:"finishReason,omitempty"`
}

type wireUsage struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

type wireError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
