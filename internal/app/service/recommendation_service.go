package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/navjivan/navjivan-backend/config"
	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/internal/store"
)

// RecommendationRequest carries what the guest told the chef modal.
type RecommendationRequest struct {
	Mood    string `json:"mood" binding:"required"`
	Dietary string `json:"dietary"`
}

// Recommendation is one suggested dish. Name always matches a dish on the
// current menu.
type Recommendation struct {
	Name        string `json:"name"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
}

type RecommendationService interface {
	Recommend(req *RecommendationRequest) ([]Recommendation, error)
}

type recommendationService struct {
	config *config.Config
	store  *store.Store
	client *http.Client
}

func NewRecommendationService(cfg *config.Config, contentStore *store.Store) RecommendationService {
	return &recommendationService{
		config: cfg,
		store:  contentStore,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type openAIRequest struct {
	Model    string          `json:"model"`
	Messages []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Recommend asks the model for exactly three dishes from the current menu.
// Suggestions that name dishes not on the menu are filtered out.
func (s *recommendationService) Recommend(req *RecommendationRequest) ([]Recommendation, error) {
	if s.config.AI.APIKey == "" {
		return nil, fmt.Errorf("AI API key is not configured")
	}

	menu := s.store.SortedMenuItems()
	if len(menu) == 0 {
		return nil, fmt.Errorf("menu is empty, nothing to recommend")
	}

	prompt := s.buildPrompt(menu, req)

	content, err := s.callChatCompletions(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to call AI API: %v", err)
	}

	recommendations, err := parseRecommendations(content)
	if err != nil {
		return nil, err
	}

	onMenu := make(map[string]bool, len(menu))
	for _, item := range menu {
		onMenu[strings.ToLower(item.Name)] = true
	}
	valid := recommendations[:0]
	for _, r := range recommendations {
		if onMenu[strings.ToLower(r.Name)] {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("AI returned no dishes from the menu")
	}
	if len(valid) > 3 {
		valid = valid[:3]
	}
	return valid, nil
}

func (s *recommendationService) buildPrompt(menu []model.MenuItem, req *RecommendationRequest) string {
	var prompt strings.Builder

	prompt.WriteString("You are the head chef of Navjivan, an Indian restaurant. ")
	prompt.WriteString("A guest asks for dish recommendations.\n\n")

	prompt.WriteString("Current menu:\n")
	for _, item := range menu {
		prompt.WriteString(fmt.Sprintf("- %s (%s): %s\n", item.Name, item.Category, item.Description))
	}

	prompt.WriteString(fmt.Sprintf("\nGuest mood: %s\n", req.Mood))
	if req.Dietary != "" {
		prompt.WriteString(fmt.Sprintf("Dietary preference: %s\n", req.Dietary))
	}

	prompt.WriteString("\nRecommend exactly 3 dishes. Only recommend dishes from the menu above, ")
	prompt.WriteString("never invent a dish. Respond with a JSON array only, no prose, where each ")
	prompt.WriteString("element has the keys \"name\", \"reason\" and \"description\". ")
	prompt.WriteString("\"name\" must match the menu dish name exactly.")

	return prompt.String()
}

func (s *recommendationService) callChatCompletions(prompt string) (string, error) {
	reqData := openAIRequest{
		Model: s.config.AI.Model,
		Messages: []openAIMessage{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	url := strings.TrimRight(s.config.AI.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.config.AI.APIKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	var aiResp openAIResponse
	if err := json.Unmarshal(body, &aiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	if aiResp.Error != nil {
		return "", fmt.Errorf("AI API error: %s", aiResp.Error.Message)
	}

	if len(aiResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI API")
	}

	return strings.TrimSpace(aiResp.Choices[0].Message.Content), nil
}

// parseRecommendations tolerates a fenced code block around the JSON, which
// some models emit despite instructions.
func parseRecommendations(content string) ([]Recommendation, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var recommendations []Recommendation
	if err := json.Unmarshal([]byte(content), &recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations: %v", err)
	}
	return recommendations, nil
}
