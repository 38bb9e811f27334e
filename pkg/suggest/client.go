package suggest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is the narrow seam to the external reasoning source: one prompt
// in, one response text out. The engine itself never performs I/O.
type Client interface {
	Suggest(prompt string) (string, error)
}

type openAI struct {
	endpoint string
	key      string
	model    string
}

// NewOpenAI talks to any OpenAI-compatible chat completions endpoint.
func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) Suggest(prompt string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are an expert kitchen-garden planner. Reply ONLY valid JSON matching the requested shape."},
			{"role": "user", "content": prompt},
		},
		"temperature": 0.2,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, err := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("suggest: no choices in response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
