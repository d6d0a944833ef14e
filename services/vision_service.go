package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ChatMessage content is either a plain string or, for vision calls, a list
// of content parts.
type LLMMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string       `json:"model"`
	Messages    []LLMMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// LLMClient talks to an OpenAI-compatible chat-completions endpoint.
type LLMClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

func NewLLMClient() *LLMClient {
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &LLMClient{
		apiKey:  os.Getenv("LLM_API_KEY"),
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *LLMClient) Chat(messages []LLMMessage) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("LLM_API_KEY not configured")
	}

	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.4,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// FoodEstimate is the structured result of photo analysis.
type FoodEstimate struct {
	FoodName    string `json:"food_name"`
	Calories    int    `json:"calories"`
	Confidence  string `json:"confidence"` // "high" | "medium" | "low"
	Description string `json:"description"`
}

// UnknownFoodEstimate is substituted when the model reply is not the JSON we
// asked for. Never surfaced as an error.
var UnknownFoodEstimate = FoodEstimate{FoodName: "Unknown Food", Calories: 0, Confidence: "low"}

const visionInstruction = `Look at this photo of food and estimate its calorie content. Respond with ONLY a JSON object, no other text, in this exact shape:
{"food_name": "<short name>", "calories": <integer kcal estimate>, "confidence": "<high|medium|low>", "description": "<one sentence>"}`

type VisionService struct {
	llm *LLMClient
	rek *RekognitionService
}

// NewVisionService builds the photo-analysis pipeline. rek may be nil, in
// which case no label hints are attached to the prompt.
func NewVisionService(llm *LLMClient, rek *RekognitionService) *VisionService {
	return &VisionService{llm: llm, rek: rek}
}

// Estimate runs the photo (a data-URI base64 image) through the vision model
// and returns a structured calorie estimate. A reply that is not valid JSON
// yields UnknownFoodEstimate, not an error.
func (v *VisionService) Estimate(imageDataURI string) (FoodEstimate, error) {
	prompt := visionInstruction
	if v.rek != nil {
		if labels, err := v.rek.RecognizeLabels(imageDataURI); err == nil && len(labels) > 0 {
			prompt += "\nAn image classifier saw: " + strings.Join(labels, ", ") + "."
		}
	}

	messages := []LLMMessage{
		{
			Role: "user",
			Content: []map[string]any{
				{"type": "text", "text": prompt},
				{"type": "image_url", "image_url": map[string]string{"url": imageDataURI}},
			},
		},
	}

	reply, err := v.llm.Chat(messages)
	if err != nil {
		return FoodEstimate{}, err
	}
	return ParseFoodEstimate(reply), nil
}

// ParseFoodEstimate extracts the estimate from a model reply, tolerating
// markdown code fences. Anything unparsable becomes UnknownFoodEstimate.
func ParseFoodEstimate(reply string) FoodEstimate {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	var est FoodEstimate
	if err := json.Unmarshal([]byte(s), &est); err != nil {
		return UnknownFoodEstimate
	}
	if strings.TrimSpace(est.FoodName) == "" || est.Calories < 0 {
		return UnknownFoodEstimate
	}
	if est.Confidence == "" {
		est.Confidence = "low"
	}
	return est
}
