// Package extract provides the document-extraction client for the PFD
// ingestion path. It sends the flattened document text to an
// OpenAI-compatible chat-completions endpoint in JSON mode and decodes the
// returned structure by shape only — the extractor is an opaque,
// possibly-imprecise classifier and its content is never validated here.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fermworks/plantimport/internal/core"
)

const systemPrompt = `You are a process engineering assistant. You receive the text of a process flow diagram (PFD) sheet and must list the process equipment it describes.

Return ONLY a JSON object of this shape:
{
  "equipment": [
    {"name": "Seed Fermenter", "tag": "F-101"},
    {"name": "Transfer Pump"}
  ]
}

RULES:
- "name" is the free-text equipment label; always include it.
- "tag" is the external equipment code (e.g. "B-101"); omit it when the sheet shows none.
- List each physical unit once. Do not invent units that are not in the text.`

// Config holds the extraction endpoint settings.
type Config struct {
	BaseURL string        // e.g. https://openrouter.ai/api/v1
	Model   string        // e.g. openai/gpt-4o-mini
	APIKey  string
	Timeout time.Duration // Per-call timeout (0 = client default)
}

// Client calls an OpenAI-compatible chat-completions endpoint. It implements
// core.Extractor.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates an extraction client. BaseURL, Model and APIKey must be
// set; Timeout defaults to 60s.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("extract: base URL is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("extract: model is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("extract: API key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Chat-completions request/response types (OpenAI-compatible).
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ExtractStructure sends the sheet text and returns the equipment structure
// the model produced, along with the raw JSON payload for auditability.
func (c *Client) ExtractStructure(ctx context.Context, text string) (*core.PFDStructure, error) {
	req := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		Temperature:    0,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("extract: marshaling request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("extract: creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("extract: sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("extract: reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extract: API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chat chatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return nil, fmt.Errorf("extract: parsing response: %w", err)
	}
	if chat.Error != nil {
		return nil, fmt.Errorf("extract: API error: %s", chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("extract: empty response")
	}

	raw := extractJSON(chat.Choices[0].Message.Content)

	var structure core.PFDStructure
	if err := json.Unmarshal([]byte(raw), &structure); err != nil {
		return nil, fmt.Errorf("extract: parsing structure: %w", err)
	}
	structure.Raw = json.RawMessage(raw)
	return &structure, nil
}

// extractJSON strips markdown code fences some models wrap around JSON output.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return s
}
