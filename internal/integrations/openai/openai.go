package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abdelrahmanemad10/GYM/internal/config"
	"github.com/abdelrahmanemad10/GYM/internal/models"
	"github.com/abdelrahmanemad10/GYM/internal/workout"
)

// Client calls the OpenAI chat completions API to generate diet plans
type Client struct {
	apiKey      string
	apiURL      string
	maxTokens   int
	temperature float64
	client      *http.Client
	log         *logrus.Logger
}

// NewClient initializes a new OpenAI client
func NewClient(cfg *config.Config, log *logrus.Logger) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:      cfg.OpenAIKey,
		apiURL:      cfg.OpenAIURL,
		maxTokens:   700,
		temperature: 0.7,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}, nil
}

// Message represents a message in the chat conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the chat completions API
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse represents a response from the chat completions API
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// DietPlan generates a diet plan text for the given user profile
func (c *Client) DietPlan(user *models.User) (string, error) {
	messages := []Message{
		{Role: "system", Content: "You are a sports nutrition assistant. You write concise, practical weekly diet plans for gym goers on a Push/Pull/Legs program."},
		{Role: "user", Content: c.buildPrompt(user)},
	}

	request := ChatRequest{
		Model:       "gpt-3.5-turbo",
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	requestData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(requestData))
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

	var response ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	plan := strings.TrimSpace(response.Choices[0].Message.Content)
	c.log.Debugf("Diet plan generated (%d chars)", len(plan))
	return plan, nil
}

// buildPrompt assembles the user prompt from the profile attributes
// and the training split
func (c *Client) buildPrompt(user *models.User) string {
	var b strings.Builder
	b.WriteString("Create a weekly diet plan for a gym goer")
	if user.WeightKG != nil {
		fmt.Fprintf(&b, " weighing %.1f kg", *user.WeightKG)
	}
	if user.HeightCM != nil {
		fmt.Fprintf(&b, ", %.0f cm tall", *user.HeightCM)
	}
	fmt.Fprintf(&b, ". They train 6 days a week on this split: %s.", strings.Join(workout.DayLabels(), ", "))
	b.WriteString(" The goal is building muscle mass while reducing body fat. Return only the plan text.")
	return b.String()
}
